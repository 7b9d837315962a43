// Package launch — inline.go synthesizes the inline database-initialization
// command for applications that ship no dedicated setup script.
package launch

import "fmt"

// InlineScript builds the interpreter snippet for inline initialization.
//
// The snippet imports the application factory and the database object from
// the application module, constructs an application, enters its context
// manager, and calls the schema-creation routine:
//
//	from app import create_app, db
//	app = create_app()
//	with app.app_context():
//	    db.create_all()
//
// Schema creation is idempotent on the application side (existing tables
// are left untouched), which is what makes running it on every deploy safe.
func InlineScript(module, factory, database string) string {
	return fmt.Sprintf(
		"from %s import %s, %s\napp = %s()\nwith app.app_context():\n    %s.create_all()\n",
		module, factory, database, factory, database,
	)
}

// InlineArgv wraps InlineScript into a complete argv:
// [interpreter, "-c", snippet].
func InlineArgv(interpreter, module, factory, database string) []string {
	return []string{interpreter, "-c", InlineScript(module, factory, database)}
}
