package manifest

// Component is one checkable entry of the manifest, flattened out of its
// category. Architecture-specific assets produce one Component per
// architecture, carrying the shared project URL and that architecture's
// version.
type Component struct {
	// Name is the manifest key, or "<asset>-<arch>" for architecture entries
	Name string
	// Category is the top-level section the component was declared in
	Category string
	URL      string
	Version  string
	Tag      string
	Branch   string
	// ArchitectureSpecific is true for entries expanded from an ArchitectureProject
	ArchitectureSpecific bool
}

// Category names in traversal order.
const (
	CategoryAssets    = "assets"
	CategoryExternals = "externals"
	CategoryLanguages = "languages"
	CategorySpecs     = "specs"
	CategoryPlugins   = "plugins"
)

type namedProject struct {
	name    string
	project *Project
}

// Components returns every component present in the manifest, in
// declaration order: assets (hypervisors, image, initrd, kernels),
// externals, languages, specs, plugins.
func (v *Versions) Components() []Component {
	if v == nil {
		return nil
	}

	var out []Component
	add := func(category string, projects ...namedProject) {
		for _, np := range projects {
			if np.project == nil {
				continue
			}
			out = append(out, fromProject(category, np.name, np.project))
		}
	}

	if a := v.Assets; a != nil {
		if h := a.Hypervisor; h != nil {
			add(CategoryAssets,
				namedProject{"cloud_hypervisor", h.CloudHypervisor},
				namedProject{"firecracker", h.Firecracker},
				namedProject{"qemu", h.Qemu},
				namedProject{"qemu-experimental", h.QemuExperimental},
				namedProject{"qemu-tdx-experimental", h.QemuTDXExperimental},
			)
		}
		out = append(out, a.Image.expand("image")...)
		out = append(out, a.Initrd.expand("initrd")...)
		add(CategoryAssets,
			namedProject{"kernel", a.Kernel},
			namedProject{"kernel-experimental", a.KernelExperimental},
			namedProject{"kernel-arm-experimental", a.KernelArmExperimental},
			namedProject{"kernel-dragonball-experimental", a.KernelDragonballExperimental},
			namedProject{"kernel-tdx-experimental", a.KernelTDXExperimental},
		)
	}

	if e := v.Externals; e != nil {
		add(CategoryExternals,
			namedProject{"cni-plugins", e.CNIPlugins},
			namedProject{"conmon", e.Conmon},
			namedProject{"crio", e.Crio},
			namedProject{"containerd", e.Containerd},
			namedProject{"critools", e.Critools},
			namedProject{"gperf", e.Gperf},
			namedProject{"kubernetes", e.Kubernetes},
			namedProject{"libseccomp", e.Libseccomp},
			namedProject{"runc", e.Runc},
			namedProject{"nydus", e.Nydus},
			namedProject{"nydus-snapshotter", e.NydusSnapshotter},
			namedProject{"ovmf", e.OVMF},
			namedProject{"td-shim", e.TDShim},
			namedProject{"virtiofsd", e.Virtiofsd},
		)
	}

	if l := v.Languages; l != nil {
		add(CategoryLanguages,
			namedProject{"golang", l.Golang},
			namedProject{"rust", l.Rust},
			namedProject{"golangci-lint", l.GolangciLint},
		)
	}

	if s := v.Specs; s != nil {
		add(CategorySpecs, namedProject{"oci", s.OCI})
	}

	if p := v.Plugins; p != nil {
		add(CategoryPlugins, namedProject{"sriov-network-device", p.SRIOVNetworkDevice})
	}

	return out
}

func fromProject(category, name string, p *Project) Component {
	return Component{
		Name:     name,
		Category: category,
		URL:      p.URL,
		Version:  p.Version,
		Tag:      p.Tag,
		Branch:   p.Branch,
	}
}

// expand turns an architecture project into one component per architecture.
func (p *ArchitectureProject) expand(prefix string) []Component {
	if p == nil || p.Architecture == nil {
		return nil
	}

	arches := []struct {
		name string
		arch *Arch
	}{
		{"aarch64", p.Architecture.Aarch64},
		{"ppc64le", p.Architecture.Ppc64le},
		{"s390x", p.Architecture.S390x},
		{"x86_64", p.Architecture.X86_64},
	}

	var out []Component
	for _, a := range arches {
		if a.arch == nil {
			continue
		}
		out = append(out, Component{
			Name:                 prefix + "-" + a.name,
			Category:             CategoryAssets,
			URL:                  p.URL,
			Version:              a.arch.Version,
			ArchitectureSpecific: true,
		})
	}
	return out
}
