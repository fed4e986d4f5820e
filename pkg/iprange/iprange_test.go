package iprange

import (
	"errors"
	"net/netip"
	"testing"

	"github.com/henderiw/wrange/pkg/wrange"
	"github.com/tj/assert"
	"go4.org/netipx"
)

func TestFromIPRange(t *testing.T) {
	cases := map[string]struct {
		ipRange string
		want    string
	}{
		"Normal":     {ipRange: "10.0.0.10-10.0.0.20", want: "[167772170,167772180]"},
		"SingleAddr": {ipRange: "10.0.0.1-10.0.0.1", want: "[167772161,167772161]"},
		"Everything": {ipRange: "0.0.0.0-255.255.255.255", want: "[0,4294967295]"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r, err := netipx.ParseIPRange(tc.ipRange)
			assert.NoError(t, err)

			w, err := FromIPRange(r)
			assert.NoError(t, err)
			assert.Equal(t, wrange.Convergent, w.Kind())
			assert.Equal(t, tc.want, w.String())
		})
	}
}

func TestWrap(t *testing.T) {
	w, err := Wrap(netip.MustParseAddr("255.255.255.250"), netip.MustParseAddr("0.0.0.5"))
	assert.NoError(t, err)
	assert.Equal(t, wrange.Divergent, w.Kind())
	assert.True(t, Contains(w.Set(), netip.MustParseAddr("255.255.255.255")))
	assert.True(t, Contains(w.Set(), netip.MustParseAddr("0.0.0.0")))
	assert.False(t, Contains(w.Set(), netip.MustParseAddr("10.0.0.1")))
}

func TestNotIPv4(t *testing.T) {
	_, err := Wrap(netip.MustParseAddr("2001:db8::1"), netip.MustParseAddr("10.0.0.1"))
	assert.True(t, errors.Is(err, ErrNotIPv4))

	_, err = FromPrefix(netip.MustParsePrefix("2001:db8::/64"))
	assert.True(t, errors.Is(err, ErrNotIPv4))

	_, err = FromIPRange(netipx.IPRange{})
	assert.Error(t, err)

	// v4 mapped v6 addresses are accepted
	v, err := ToUint32(netip.MustParseAddr("::ffff:10.0.0.1"))
	assert.NoError(t, err)
	assert.Equal(t, netip.MustParseAddr("10.0.0.1"), FromUint32(v))

	assert.False(t, Contains(wrange.NewFull[uint32]().Set(), netip.MustParseAddr("2001:db8::1")))
}

func TestFromPrefix(t *testing.T) {
	w, err := FromPrefix(netip.MustParsePrefix("10.0.0.77/24"))
	assert.NoError(t, err)

	rs, err := Ranges(w.Set())
	assert.NoError(t, err)
	assert.Equal(t, 1, len(rs))
	assert.Equal(t, "10.0.0.0-10.0.0.255", rs[0].String())
}

func TestRanges(t *testing.T) {
	addr := func(s string) uint32 {
		v, err := ToUint32(netip.MustParseAddr(s))
		assert.NoError(t, err)
		return v
	}

	cases := map[string]struct {
		set  wrange.Set[uint32]
		want []string
	}{
		"Empty": {
			set:  wrange.SetOf(wrange.NewEmpty[uint32]()),
			want: nil,
		},
		"Full": {
			set:  wrange.SetOf(wrange.NewFull[uint32]()),
			want: []string{"0.0.0.0-255.255.255.255"},
		},
		"OpenBounds": {
			set:  wrange.SetOf(wrange.NewOpen(addr("10.0.0.0"), addr("10.0.0.10"))),
			want: []string{"10.0.0.1-10.0.0.9"},
		},
		"NoAddressBetween": {
			set:  wrange.SetOf(wrange.NewOpen(addr("10.0.0.1"), addr("10.0.0.2"))),
			want: nil,
		},
		"SplitAtTheSeam": {
			set:  wrange.SetOf(wrange.NewClosed(addr("255.255.255.0"), addr("0.0.0.255"))),
			want: []string{"0.0.0.0-0.0.0.255", "255.255.255.0-255.255.255.255"},
		},
		"OpenAtTheSeam": {
			set: wrange.SetOf(wrange.New(
				wrange.NewExclusive(addr("255.255.255.255")),
				wrange.NewExclusive(addr("0.0.0.0")),
			)),
			want: nil,
		},
		"MergedMembers": {
			set: wrange.SetOf(
				wrange.NewClosed(addr("10.0.0.0"), addr("10.0.0.5")),
				wrange.NewClosed(addr("10.0.0.6"), addr("10.0.0.9")),
			),
			want: []string{"10.0.0.0-10.0.0.9"},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			rs, err := Ranges(tc.set)
			assert.NoError(t, err)
			var got []string
			for _, r := range rs {
				got = append(got, r.String())
			}
			assert.Equal(t, tc.want, got)
		})
	}
}
