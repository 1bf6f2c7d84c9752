// Package platform describes the operating system the process runs on.
package platform

import (
	"runtime"
	"sync"
)

// Info identifies an operating system and architecture. Exactly one of
// the OS flags is set for the systems it knows about; all are false
// elsewhere.
type Info struct {
	OS   string `yaml:"os" json:"os"`
	Arch string `yaml:"arch" json:"arch"`

	Windows bool `yaml:"windows" json:"windows"`
	Linux   bool `yaml:"linux" json:"linux"`
	FreeBSD bool `yaml:"freebsd" json:"freebsd"`
	OpenBSD bool `yaml:"openbsd" json:"openbsd"`
	Darwin  bool `yaml:"darwin" json:"darwin"`
	SunOS   bool `yaml:"sunos" json:"sunos"`
	AIX     bool `yaml:"aix" json:"aix"`
}

// Detect builds the Info for a GOOS/GOARCH pair. Both solaris and
// illumos count as SunOS.
func Detect(goos, goarch string) Info {
	return Info{
		OS:      goos,
		Arch:    goarch,
		Windows: goos == "windows",
		Linux:   goos == "linux",
		FreeBSD: goos == "freebsd",
		OpenBSD: goos == "openbsd",
		Darwin:  goos == "darwin",
		SunOS:   goos == "solaris" || goos == "illumos",
		AIX:     goos == "aix",
	}
}

var current = sync.OnceValue(func() Info {
	return Detect(runtime.GOOS, runtime.GOARCH)
})

// Current returns the Info of the running process. It is computed once.
func Current() Info {
	return current()
}

// Name returns the short platform name: "win32" on Windows, "sunos" on
// Solaris and illumos, otherwise GOOS.
func (i Info) Name() string {
	switch {
	case i.Windows:
		return "win32"
	case i.SunOS:
		return "sunos"
	}
	return i.OS
}
