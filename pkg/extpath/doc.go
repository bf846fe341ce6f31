// Package extpath resolves module identifiers to base directories.
//
// Both resolvers implement mailer.PathResolver. Names are case-folded before
// lookup, so "Demo" and "demo" resolve to the same module, and returned paths
// always end with a slash.
//
//	paths := extpath.Dir("/var/www/ext")      // /var/www/ext/<name>/
//	paths := extpath.NewMap(map[string]string{ // explicit registry
//		"demo": "/srv/mail/demo",
//	})
package extpath
