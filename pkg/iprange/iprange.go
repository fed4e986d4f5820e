// Package iprange maps IPv4 address ranges onto wrapping ranges over uint32
// and back onto netipx sets.
package iprange

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"net/netip"

	"github.com/henderiw/wrange/pkg/wrange"
	"go4.org/netipx"
)

var ErrNotIPv4 = errors.New("not an IPv4 address")

var (
	minAddr = netip.AddrFrom4([4]byte{})
	maxAddr = netip.AddrFrom4([4]byte{255, 255, 255, 255})
)

// FromIPRange returns the closed range covering r.
func FromIPRange(r netipx.IPRange) (wrange.Wrange[uint32], error) {
	if !r.IsValid() {
		return wrange.Wrange[uint32]{}, fmt.Errorf("ip range %s is invalid", r.String())
	}
	return Wrap(r.From(), r.To())
}

// Wrap returns the closed range from one address to another. When from is
// after to the range wraps past 255.255.255.255 back to 0.0.0.0.
func Wrap(from, to netip.Addr) (wrange.Wrange[uint32], error) {
	f, err := ToUint32(from)
	if err != nil {
		return wrange.Wrange[uint32]{}, err
	}
	t, err := ToUint32(to)
	if err != nil {
		return wrange.Wrange[uint32]{}, err
	}
	return wrange.NewClosed(f, t), nil
}

// FromPrefix returns the closed range of all addresses in p.
func FromPrefix(p netip.Prefix) (wrange.Wrange[uint32], error) {
	if !p.IsValid() {
		return wrange.Wrange[uint32]{}, fmt.Errorf("prefix %s is invalid", p.String())
	}
	return FromIPRange(netipx.RangeOfPrefix(p.Masked()))
}

// ToUint32 returns the IPv4 address as a number.
func ToUint32(addr netip.Addr) (uint32, error) {
	addr = addr.Unmap()
	if !addr.Is4() {
		return 0, fmt.Errorf("ip address %s: %w", addr.String(), ErrNotIPv4)
	}
	b := addr.As4()
	return binary.BigEndian.Uint32(b[:]), nil
}

// FromUint32 is the inverse of ToUint32.
func FromUint32(v uint32) netip.Addr {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return netip.AddrFrom4(b)
}

// IPSet returns the addresses covered by s. Exclusive bounds are moved onto
// the next address inside the range and wrapping ranges are split at
// 255.255.255.255.
func IPSet(s wrange.Set[uint32]) (*netipx.IPSet, error) {
	var b netipx.IPSetBuilder
	for _, w := range s.Normalized().Members() {
		switch w.Kind() {
		case wrange.Empty:
		case wrange.Full:
			b.AddRange(netipx.IPRangeFrom(minAddr, maxAddr))
		case wrange.Convergent:
			bounds, _ := w.Bounds()
			addRange(&b, lowest(bounds.Low), highest(bounds.High))
		case wrange.Divergent:
			bounds, _ := w.Bounds()
			addRange(&b, lowest(bounds.Low), math.MaxUint32)
			addRange(&b, 0, highest(bounds.High))
		}
	}
	return b.IPSet()
}

// Ranges returns the minimal sorted list of address ranges covered by s.
func Ranges(s wrange.Set[uint32]) ([]netipx.IPRange, error) {
	set, err := IPSet(s)
	if err != nil {
		return nil, err
	}
	return set.Ranges(), nil
}

// Contains reports whether addr is covered by s. Non IPv4 addresses are never
// covered.
func Contains(s wrange.Set[uint32], addr netip.Addr) bool {
	v, err := ToUint32(addr)
	if err != nil {
		return false
	}
	return s.Contains(v)
}

// lowest returns the first address at or above the lower bound b, as int64 so
// that excluding 255.255.255.255 yields an empty span.
func lowest(b wrange.Bound[uint32]) int64 {
	if b.IsExclusive() {
		return int64(b.Value()) + 1
	}
	return int64(b.Value())
}

// highest returns the last address at or below the upper bound b.
func highest(b wrange.Bound[uint32]) int64 {
	if b.IsExclusive() {
		return int64(b.Value()) - 1
	}
	return int64(b.Value())
}

func addRange(b *netipx.IPSetBuilder, from, to int64) {
	if from > to {
		return
	}
	b.AddRange(netipx.IPRangeFrom(FromUint32(uint32(from)), FromUint32(uint32(to))))
}
