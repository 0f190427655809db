// Package project inspects the host frontend project.
//
// Detection is behind the Probe interface so the store generator can be
// tested without a node_modules tree:
//
//	env, err := project.NewNodeModulesProbe(".").Detect(ctx)
//	// project.Nuxt3, project.Vue3 or project.Unsupported
//
// InstalledVersion reads node_modules/<pkg>/package.json when callers want
// to report or sanity-check the framework version.
package project
