// Package config provides configuration for the Student Data Explorer.
//
// Configuration is layered: struct-tag defaults, then an optional YAML file,
// then SDE_-prefixed environment variables, with the environment taking
// precedence. The input path is an explicit configuration value handed into
// the pipeline entry point, never a module-wide constant, so runs against
// arbitrary files need no environment coupling.
//
// Example:
//
//	cfg, err := config.Load("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Input.Path)
package config
