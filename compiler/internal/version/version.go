package version

import (
	"fmt"
	"runtime"
)

// Version is overridden at link time:
//
//	go build -ldflags "-X github.com/nimblelang/nimble/compiler/internal/version.Version=v0.2.0"
var Version = "v0.1.0-dev"

func String() string {
	return fmt.Sprintf("nimblec %s (%s %s/%s)", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
