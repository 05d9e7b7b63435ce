package build_version

// Set at link time:
//
//	go build -ldflags "-X github.com/DennyJohansson/todo/internal/build_version.version=v0.2.0" ./cmd
var version = "dev"

func GetVersion() string {
	return version
}
