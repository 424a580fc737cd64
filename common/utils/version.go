package utils

// Set at build time via -ldflags "-X github.com/ballarena/ballarena/common/utils.version=..."
var version = "dev"

func GetVersion() string {
	return version
}
