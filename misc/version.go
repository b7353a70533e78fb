// Package misc keeps build time stamps.
package misc

// Set by linker flags during release build.
var (
	appName = "gradc"
	version = "dev"
	gitHash = "unknown"
)

func GetAppName() string {
	return appName
}

func GetVersion() string {
	return version
}

func GetGitHash() string {
	return gitHash
}
