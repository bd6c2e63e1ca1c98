// Package config defines the configuration surface of the project-librarian
// agent platform and loads it into an immutable, validated Config.
//
// This package manages:
//   - Defaults for every recognized variable (PROJECT_ID, LOCATION, agent
//     model names, Firestore database, staging bucket, ...)
//   - Overrides from the process environment and optional .env files
//   - Named override profiles (production, debug) replacing the old habit
//     of keeping alternative values commented out in a sourced script
//   - Validation of required fields and enumerated values
//   - Materialization back into the process environment for tooling that
//     still reads ambient variables (the deployed agent engine does)
//
// Precedence, highest first: process environment, .env file, profile
// overrides, built-in defaults.
//
// Usage:
//
//	cfg, err := config.Load(ctx, config.Options{Profile: "debug"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Project.ProjectID)
package config
