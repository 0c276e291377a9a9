// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/carrierd/fault"
	"github.com/bitmark-inc/carrierd/record"
)

// test the packing of a demand against a hand built record
func TestPackDemand(t *testing.T) {
	d := record.Demand{
		Expiry:      0x01020304,
		ItemValue:   100000000,
		Owner:       ownerOne,
		RepRequired: 300,
		ItemSize:    127,
		Info:        []byte{0xde, 0xad, 0xbe, 0xef},
	}

	expected := []byte{
		0x04, 0x03, 0x02, 0x01, // expiry
		0x00, 0xe1, 0xf5, 0x05, 0x00, // item value
	}
	expected = append(expected, ownerOne[:]...)
	expected = append(expected, 0x2c, 0x01) // rep required
	expected = append(expected, 0x7f)       // item size
	expected = append(expected, 0xde, 0xad, 0xbe, 0xef)

	packed, err := d.Pack(testLimits)
	require.Nil(t, err, "pack error")
	assert.Equal(t, record.Packed(expected), packed, "packed demand")
	assert.Equal(t, testLimits.DemandLength(), len(packed), "demand length")
}

func TestDemandRoundTrip(t *testing.T) {
	items := []record.Demand{
		{Expiry: 0, ItemValue: 0, Owner: ownerOne, RepRequired: 0, ItemSize: 0, Info: []byte{0, 0, 0, 0}},
		{Expiry: 2147483647, ItemValue: 549755813887, Owner: ownerTwo, RepRequired: 32767, ItemSize: 127, Info: []byte{1, 2, 3, 4}},
		{Expiry: 1000, ItemValue: 32768, Owner: ownerOne, RepRequired: 128, ItemSize: 5, Info: []byte{0xff, 0xfe, 0xfd, 0xfc}},
	}

	for i, item := range items {
		packed, err := item.Pack(testLimits)
		require.Nil(t, err, "%d: pack error", i)

		v, err := record.NewDemandView(packed, testLimits.InfoLength)
		require.Nil(t, err, "%d: view error", i)

		assert.Equal(t, item.Expiry, v.Expiry(), "%d: expiry", i)
		assert.Equal(t, item.ItemValue, v.ItemValue(), "%d: item value", i)
		assert.Equal(t, item.Owner, v.Owner(), "%d: owner", i)
		assert.Equal(t, item.RepRequired, v.RepRequired(), "%d: rep required", i)
		assert.Equal(t, item.ItemSize, v.ItemSize(), "%d: item size", i)
		assert.Equal(t, []byte(item.Info), v.Info(), "%d: info", i)

		unpacked, err := record.UnpackDemand(packed, testLimits.InfoLength)
		require.Nil(t, err, "%d: unpack error", i)
		assert.Equal(t, &item, unpacked, "%d: unpacked", i)
	}
}

func TestDemandItemSizeBoundary(t *testing.T) {
	info := []byte{1, 2, 3, 4}

	packed := record.CreateDemand(testLimits, ownerOne, 100, 1, 127, 10, info)
	assert.False(t, packed.IsEmpty(), "item size 127 accepted")

	packed = record.CreateDemand(testLimits, ownerOne, 100, 1, 128, 10, info)
	assert.True(t, packed.IsEmpty(), "item size 128 rejected")
	assert.Equal(t, 0, len(packed), "no bytes for rejected demand")

	d := record.Demand{Expiry: 100, ItemSize: 128, Owner: ownerOne, Info: info}
	_, err := d.Pack(testLimits)
	assert.Equal(t, fault.ErrItemSizeTooLarge, err, "item size error")
}

func TestDemandItemValueCeiling(t *testing.T) {
	info := []byte{1, 2, 3, 4}

	packed := record.CreateDemand(testLimits, ownerOne, 100, 1, 1, 100000000, info)
	assert.False(t, packed.IsEmpty(), "item value 100000000 accepted")

	packed = record.CreateDemand(testLimits, ownerOne, 100, 1, 1, 550000000000, info)
	assert.True(t, packed.IsEmpty(), "item value 550000000000 rejected")

	// a tighter configured ceiling
	limits := *testLimits
	limits.MaximumItemValue = 1000
	packed = record.CreateDemand(&limits, ownerOne, 100, 1, 1, 1000, info)
	assert.False(t, packed.IsEmpty(), "value at ceiling")
	packed = record.CreateDemand(&limits, ownerOne, 100, 1, 1, 1001, info)
	assert.True(t, packed.IsEmpty(), "value above ceiling")

	// a ceiling above the field width is clamped
	limits.MaximumItemValue = 1 << 50
	d := record.Demand{Expiry: 100, ItemValue: record.MaximumValue + 1, Owner: ownerOne, Info: info}
	_, err := d.Pack(&limits)
	assert.Equal(t, fault.ErrItemValueTooLarge, err, "clamped ceiling")
}

func TestDemandFieldWidths(t *testing.T) {
	info := []byte{1, 2, 3, 4}
	items := []struct {
		demand record.Demand
		err    error
	}{
		{record.Demand{Expiry: 2147483648, Info: info}, fault.ErrExpiryTooLarge},
		{record.Demand{Expiry: 1, RepRequired: 32768, Info: info}, fault.ErrRepRequiredTooLarge},
		{record.Demand{Expiry: 1, Info: info[:3]}, fault.ErrInfoLength},
		{record.Demand{Expiry: 1, Info: append(info, 5)}, fault.ErrInfoLength},
	}

	for i, item := range items {
		packed, err := item.demand.Pack(testLimits)
		assert.Equal(t, item.err, err, "%d: error", i)
		assert.Nil(t, packed, "%d: no record", i)
	}
}

func TestDemandDefaultLimits(t *testing.T) {
	info := bytes.Repeat([]byte{0x5a}, record.DefaultInfoLength)
	d := record.Demand{Expiry: 1, ItemValue: 1, Owner: ownerTwo, ItemSize: 1, Info: info}

	packed, err := d.Pack(nil)
	require.Nil(t, err, "pack with default limits")
	assert.Equal(t, record.DemandHeaderLength+record.DefaultInfoLength, len(packed), "default length")
}

func TestDemandViewLength(t *testing.T) {
	_, err := record.NewDemandView(make(record.Packed, 35), 4)
	assert.Equal(t, fault.ErrRecordLength, err, "short demand")

	_, err = record.NewDemandView(make(record.Packed, 37), 4)
	assert.Equal(t, fault.ErrRecordLength, err, "long demand")

	_, err = record.NewDemandView(make(record.Packed, 36), 4)
	assert.Nil(t, err, "exact demand")

	// zero view is harmless
	v := record.DemandView{}
	assert.Equal(t, uint64(0), v.ItemValue(), "zero view")
	assert.Nil(t, v.Info(), "zero view info")
}
