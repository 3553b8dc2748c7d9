// Package manifest models the versions manifest audited by check-versions.
//
// The manifest groups components into fixed categories (assets, externals,
// languages, specs, plugins). Components missing from a file are left nil
// and skipped during traversal; keys the model does not know are ignored.
package manifest

// Versions is the root of the manifest document.
type Versions struct {
	Description string     `yaml:"description" toml:"description"`
	Format      string     `yaml:"format" toml:"format"`
	Assets      *Assets    `yaml:"assets" toml:"assets"`
	Externals   *Externals `yaml:"externals" toml:"externals"`
	Languages   *Languages `yaml:"languages" toml:"languages"`
	Specs       *Specs     `yaml:"specs" toml:"specs"`
	Plugins     *Plugins   `yaml:"plugins" toml:"plugins"`
}

// Assets holds the hypervisors, guest images and kernels.
type Assets struct {
	Hypervisor                   *Hypervisor          `yaml:"hypervisor" toml:"hypervisor"`
	Image                        *ArchitectureProject `yaml:"image" toml:"image"`
	Initrd                       *ArchitectureProject `yaml:"initrd" toml:"initrd"`
	Kernel                       *Project             `yaml:"kernel" toml:"kernel"`
	KernelExperimental           *Project             `yaml:"kernel-experimental" toml:"kernel-experimental"`
	KernelArmExperimental        *Project             `yaml:"kernel-arm-experimental" toml:"kernel-arm-experimental"`
	KernelDragonballExperimental *Project             `yaml:"kernel-dragonball-experimental" toml:"kernel-dragonball-experimental"`
	KernelTDXExperimental        *Project             `yaml:"kernel-tdx-experimental" toml:"kernel-tdx-experimental"`
}

// Hypervisor lists the supported hypervisors.
type Hypervisor struct {
	Description         string   `yaml:"description" toml:"description"`
	CloudHypervisor     *Project `yaml:"cloud_hypervisor" toml:"cloud_hypervisor"`
	Firecracker         *Project `yaml:"firecracker" toml:"firecracker"`
	Qemu                *Project `yaml:"qemu" toml:"qemu"`
	QemuExperimental    *Project `yaml:"qemu-experimental" toml:"qemu-experimental"`
	QemuTDXExperimental *Project `yaml:"qemu-tdx-experimental" toml:"qemu-tdx-experimental"`
}

// ArchitectureProject is a component whose version differs per CPU architecture.
type ArchitectureProject struct {
	Description  string        `yaml:"description" toml:"description"`
	URL          string        `yaml:"url" toml:"url"`
	Architecture *Architecture `yaml:"architecture" toml:"architecture"`
}

// Architecture is the per-architecture table of an ArchitectureProject.
type Architecture struct {
	Aarch64 *Arch `yaml:"aarch64" toml:"aarch64"`
	Ppc64le *Arch `yaml:"ppc64le" toml:"ppc64le"`
	S390x   *Arch `yaml:"s390x" toml:"s390x"`
	X86_64  *Arch `yaml:"x86_64" toml:"x86_64"`
}

// Arch is a single architecture entry.
type Arch struct {
	Name    string `yaml:"name" toml:"name"`
	Version string `yaml:"version" toml:"version"`
}

// Externals lists third-party components consumed by the runtime.
type Externals struct {
	Description      string   `yaml:"description" toml:"description"`
	CNIPlugins       *Project `yaml:"cni-plugins" toml:"cni-plugins"`
	Conmon           *Project `yaml:"conmon" toml:"conmon"`
	Crio             *Project `yaml:"crio" toml:"crio"`
	Containerd       *Project `yaml:"containerd" toml:"containerd"`
	Critools         *Project `yaml:"critools" toml:"critools"`
	Gperf            *Project `yaml:"gperf" toml:"gperf"`
	Kubernetes       *Project `yaml:"kubernetes" toml:"kubernetes"`
	Libseccomp       *Project `yaml:"libseccomp" toml:"libseccomp"`
	Runc             *Project `yaml:"runc" toml:"runc"`
	Nydus            *Project `yaml:"nydus" toml:"nydus"`
	NydusSnapshotter *Project `yaml:"nydus-snapshotter" toml:"nydus-snapshotter"`
	OVMF             *Project `yaml:"ovmf" toml:"ovmf"`
	TDShim           *Project `yaml:"td-shim" toml:"td-shim"`
	Virtiofsd        *Project `yaml:"virtiofsd" toml:"virtiofsd"`
}

// Languages lists the toolchains. Entries usually carry no URL.
type Languages struct {
	Description  string   `yaml:"description" toml:"description"`
	Golang       *Project `yaml:"golang" toml:"golang"`
	Rust         *Project `yaml:"rust" toml:"rust"`
	GolangciLint *Project `yaml:"golangci-lint" toml:"golangci-lint"`
}

// Specs lists the specifications implemented.
type Specs struct {
	Description string   `yaml:"description" toml:"description"`
	OCI         *Project `yaml:"oci" toml:"oci"`
}

// Plugins lists optional plugins.
type Plugins struct {
	Description        string   `yaml:"description" toml:"description"`
	SRIOVNetworkDevice *Project `yaml:"sriov-network-device" toml:"sriov-network-device"`
}

// Project is a single tracked component. Every field is optional.
type Project struct {
	Description string `yaml:"description" toml:"description"`
	URL         string `yaml:"url" toml:"url"`
	Version     string `yaml:"version" toml:"version"`
	Tag         string `yaml:"tag" toml:"tag"`
	Branch      string `yaml:"branch" toml:"branch"`
}
