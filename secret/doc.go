// Package secret resolves secret references in configuration values.
//
// The directory client's application secret should never sit in plain
// configuration. This package supports:
//   - Strict environment expansion (see ExpandEnvStrict)
//   - Pluggable secret providers (see Provider)
//   - Resolving secret references in configuration values (see Resolver)
//
// References use the prefix "secretref:":
//   - Full value:  secretref:vault:auth/directory/app_secret
//   - Inline use:  prefix-secretref:vault:auth/directory/app_secret
package secret
