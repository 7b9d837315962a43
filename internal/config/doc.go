// Package config handles loading and validation of the launchpad
// configuration file.
//
// The configuration describes the two collaborators the launcher sequences:
// the database-initialization subprocess and the web-server process. It is
// read from launchpad.json (JSONC — comments and trailing commas allowed)
// or launchpad.yaml/yml in the project directory.
//
// Key responsibilities:
//   - Locate the configuration file in standard paths
//   - Parse JSONC (via github.com/tidwall/jsonc) or YAML (gopkg.in/yaml.v3)
//   - Apply defaults matching the conventional WSGI deployment
//     (python / create_app / gunicorn --bind)
//   - Validate the result before any subprocess is started
package config
