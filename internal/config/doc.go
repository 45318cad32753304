// Package config loads the componentdocs YAML configuration.
//
// Values may reference environment variables as ${NAME}; variables from a
// .env or .env.local file in the working directory are loaded first without
// overriding the process environment.
package config
