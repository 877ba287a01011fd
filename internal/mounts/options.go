package mounts

// DefaultMountTable is where the Linux engine reads mounts from
const DefaultMountTable = "/proc/mounts"

// DefaultPseudoTypes lists the kernel filesystem types the Linux engine
// marks as dummy. Kernels grow new pseudo filesystems, so callers can replace
// or extend the set with WithPseudoTypes and WithExtraPseudoTypes.
var DefaultPseudoTypes = []string{
	"autofs",
	"proc",
	"subfs",
	"debugfs",
	"devpts",
	"fusectl",
	"mqueue",
	"rpc_pipefs",
	"sysfs",
	"devfs",
	"kernfs",
	"ignore",
	"cgroup",
	"cgroup2",
	"securityfs",
	"tracefs",
	"pstore",
	"bpf",
	"configfs",
	"binfmt_misc",
	"selinuxfs",
	"nsfs",
	"efivarfs",
}

// config is built fresh for every call
type config struct {
	mountTable  string
	pseudoTypes map[string]struct{}
}

// Option adjusts a single enumeration call. Options only affect the Linux
// engine; other platforms accept and ignore them.
type Option func(*config)

// WithMountTable reads mounts from path instead of /proc/mounts
func WithMountTable(path string) Option {
	return func(c *config) {
		if path != "" {
			c.mountTable = path
		}
	}
}

// WithPseudoTypes replaces the set of filesystem types classified as dummy
func WithPseudoTypes(types ...string) Option {
	return func(c *config) {
		c.pseudoTypes = make(map[string]struct{}, len(types))
		for _, t := range types {
			c.pseudoTypes[t] = struct{}{}
		}
	}
}

// WithExtraPseudoTypes adds filesystem types to the dummy set
func WithExtraPseudoTypes(types ...string) Option {
	return func(c *config) {
		for _, t := range types {
			c.pseudoTypes[t] = struct{}{}
		}
	}
}

func newConfig(opts []Option) *config {
	c := &config{
		mountTable:  DefaultMountTable,
		pseudoTypes: make(map[string]struct{}, len(DefaultPseudoTypes)),
	}
	for _, t := range DefaultPseudoTypes {
		c.pseudoTypes[t] = struct{}{}
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *config) isPseudo(fstype string) bool {
	_, ok := c.pseudoTypes[fstype]
	return ok
}
