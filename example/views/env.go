// Package views holds the generated views of the bundled example schemas,
// together with the externals and semantic types they call.
package views

import (
	"net"
	"net/netip"

	"github.com/alexhholmes/pktlayout/example"
)

//go:generate go run ../../cmd/packetgen gen ../schemas/arp.yaml -o arp_views.go -p views
//go:generate go run ../../cmd/packetgen gen ../schemas/fruit.yaml -o fruit_views.go -p views
//go:generate go run ../../cmd/packetgen gen ../schemas/gre.yaml -o gre_views.go -p views
//go:generate go run ../../cmd/packetgen gen ../schemas/nested.yaml -o nested_views.go -p views
//go:generate go run ../../cmd/packetgen gen ../schemas/udp.yaml -o udp_views.go -p views
//go:generate go run ../../cmd/packetgen gen ../schemas/varint.yaml -o varint_views.go -p views

// Length functions keep the names the schemas use.

func gre_checksum_length(checksumPresent, routingPresent int) int {
	return example.GreChecksumLength(checksumPresent, routingPresent)
}

func varint_length(first int) int {
	return example.VarintLength(byte(first))
}

func length_fn(n int) int {
	return n - 2
}

func option_length_fn(n int) int {
	return n - 2
}

// MacAddr is an Ethernet hardware address.
type MacAddr [6]byte

// NewMacAddr builds a MacAddr from its octets.
func NewMacAddr(a0, a1, a2, a3, a4, a5 uint8) MacAddr {
	return MacAddr{a0, a1, a2, a3, a4, a5}
}

// ToPrimitiveValues returns the octets in wire order.
func (m MacAddr) ToPrimitiveValues() (uint8, uint8, uint8, uint8, uint8, uint8) {
	return m[0], m[1], m[2], m[3], m[4], m[5]
}

func (m MacAddr) String() string {
	return net.HardwareAddr(m[:]).String()
}

// Ipv4Addr is an IPv4 address in network byte order.
type Ipv4Addr [4]byte

// NewIpv4Addr builds an Ipv4Addr from its octets.
func NewIpv4Addr(a0, a1, a2, a3 uint8) Ipv4Addr {
	return Ipv4Addr{a0, a1, a2, a3}
}

// ToPrimitiveValues returns the octets in wire order.
func (a Ipv4Addr) ToPrimitiveValues() (uint8, uint8, uint8, uint8) {
	return a[0], a[1], a[2], a[3]
}

// Addr converts a to a netip.Addr.
func (a Ipv4Addr) Addr() netip.Addr {
	return netip.AddrFrom4(a)
}

func (a Ipv4Addr) String() string {
	return a.Addr().String()
}
