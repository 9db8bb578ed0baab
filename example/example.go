// Package example bundles protocol schemas and the bindings they need, and
// compiles them with the runtime view package.
package example

import (
	"embed"
	"fmt"
	"net"
	"net/netip"
	"path"
	"strings"

	"github.com/alexhholmes/pktlayout/view"
)

//go:embed schemas/*.yaml
var schemas embed.FS

// Schemas lists the bundled schema names.
func Schemas() []string {
	entries, err := schemas.ReadDir("schemas")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}
	return names
}

// Schema returns the source of a bundled schema.
func Schema(name string) ([]byte, error) {
	return schemas.ReadFile("schemas/" + name + ".yaml")
}

// Load compiles a bundled schema with Env.
func Load(name string) (*view.Family, error) {
	data, err := Schema(name)
	if err != nil {
		return nil, fmt.Errorf("schema %s: %w", name, err)
	}
	fam, err := view.Compile(data, view.Options{Env: Env()})
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", name, err)
	}
	return fam, nil
}

// Env binds every external the bundled schemas reference.
func Env() view.Env {
	return view.Env{
		Funcs: map[string]func(args ...int) int{
			"gre_checksum_length": func(args ...int) int {
				return GreChecksumLength(args[0], args[1])
			},
			"varint_length": func(args ...int) int {
				return VarintLength(byte(args[0]))
			},
			"length_fn":        func(args ...int) int { return args[0] - 2 },
			"option_length_fn": func(args ...int) int { return args[0] - 2 },
		},
		Types: map[string]view.SemanticType{
			"MacAddr":  macAddr,
			"Ipv4Addr": ipv4Addr,
		},
	}
}

// GreChecksumLength is the size of the checksum (and offset) word: present
// if either the checksum or the routing bit is set.
func GreChecksumLength(checksumPresent, routingPresent int) int {
	if checksumPresent|routingPresent != 0 {
		return 2
	}
	return 0
}

// VarintLength is the number of bytes following the first byte of a
// variable-length integer.
func VarintLength(first byte) int {
	return 1<<(first>>6) - 1
}

// Varint decodes a variable-length integer from its first byte and the
// bytes that follow it.
func Varint(first byte, rest []byte) uint64 {
	v := uint64(first & 0x3f)
	for _, b := range rest {
		v = v<<8 | uint64(b)
	}
	return v
}

var macAddr = view.SemanticType{
	From: func(parts ...uint64) any {
		hw := make(net.HardwareAddr, len(parts))
		for i, p := range parts {
			hw[i] = byte(p)
		}
		return hw
	},
	To: func(v any) []uint64 {
		hw, _ := v.(net.HardwareAddr)
		parts := make([]uint64, len(hw))
		for i, b := range hw {
			parts[i] = uint64(b)
		}
		return parts
	},
}

var ipv4Addr = view.SemanticType{
	From: func(parts ...uint64) any {
		var b [4]byte
		for i := range b {
			b[i] = byte(parts[i])
		}
		return netip.AddrFrom4(b)
	},
	To: func(v any) []uint64 {
		a, ok := v.(netip.Addr)
		if !ok || !a.Is4() {
			return nil
		}
		b := a.As4()
		return []uint64{uint64(b[0]), uint64(b[1]), uint64(b[2]), uint64(b[3])}
	},
}
