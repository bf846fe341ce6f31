// Package health reports whether mail modules can be served.
//
// A [CheckFunc] is a func(context.Context) error. [ModuleCheck] verifies that
// a module resolves to a base path and [TemplateCheck] verifies that its
// default HTML template exists. [Run] executes a set of named [Checks] in
// parallel and aggregates them into a [Report].
//
// [LivenessHandler] and [ReadinessHandler] expose the same information over
// HTTP for the preview server:
//
//	checks := health.Checks{
//	    "module:shop":   health.ModuleCheck(paths, "tx_shop"),
//	    "template:shop": health.TemplateCheck(m, os.DirFS("/"), "tx_shop"),
//	}
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(checks))
//
// Handlers encode the report with [Report.Encode]. The format comes from
// "?format=json|yaml|text" or, failing that, the Accept header. Plain text is
// the default.
package health
