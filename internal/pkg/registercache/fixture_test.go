package registercache

import (
	"github.com/britkat1980/givenergy-modbus/internal/pkg/register"
)

// Register dump captured from a hybrid inverter with one battery attached.
// Values are listed from offset 0 upwards, ten per line.
var holdingFixture = []uint16{
	8193, 3, 2098, 513, 0, 50000, 3600, 1, 16967, 12594, // 00x
	13108, 18229, 13879, 21313, 12594, 13108, 18229, 13879, 3005, 449, // 01x
	1, 449, 2, 0, 32768, 30235, 6000, 1, 0, 0, // 02x
	17, 0, 4, 7, 140, 22, 1, 1, 23, 57, // 03x
	19, 1, 2, 0, 0, 0, 101, 1, 0, 0, // 04x
	100, 0, 0, 1, 1, 160, 0, 0, 1, 0, // 05x
	1500, 30, 30, 1840, 2740, 4700, 5198, 126, 27, 24, // 06x
	28, 1840, 2620, 4745, 5200, 126, 52, 1, 28, 1755, // 07x
	2837, 4700, 5200, 2740, 0, 0, 0, 0, 0, 0, // 08x
	0, 0, 0, 0, 30, 430, 1, 4320, 5850, 0, // 09x
	0, 0, 0, 0, 0, 0, 0, 0, 6, 1, // 10x
	4, 50, 50, 0, 4, 0, 100, 0, 0, 0, // 11x
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 12x
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 13x
}

var inputFixture = []uint16{
	0, 14, 10, 70, 0, 2367, 0, 1832, 0, 0, // 00x
	0, 0, 159, 4990, 0, 12, 4790, 4, 0, 5, // 01x
	0, 0, 6, 0, 0, 0, 209, 0, 946, 0, // 02x
	65194, 0, 0, 3653, 0, 93, 90, 89, 30, 0, // 03x
	0, 222, 342, 680, 81, 0, 930, 0, 213, 1, // 04x
	4991, 0, 0, 2356, 4986, 223, 170, 0, 292, 4, // 05x
	3117, 3124, 3129, 3129, 3125, 3130, 3122, 3116, 3111, 3105, // 06x
	3119, 3134, 3146, 3116, 3135, 3119, 175, 167, 171, 161, // 07x
	49970, 172, 0, 50029, 0, 19097, 0, 16000, 0, 1804, // 08x
	0, 1552, 256, 0, 0, 0, 12, 16, 3005, 0, // 09x
	9, 0, 16000, 174, 167, 1696, 1744, 0, 0, 0, // 10x
	16967, 12594, 13108, 18229, 13879, 8, 0, 0, 0, 0, // 11x
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 12x
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 13x
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 14x
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 15x
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 16x
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 17x
	1696, 1744, 89, 90, 0, 0, 0, 0, 0, 0, // 18x
}

func bankMap(values []uint16) map[uint16]uint16 {
	m := make(map[uint16]uint16, len(values))
	for offset, raw := range values {
		m[uint16(offset)] = raw
	}
	return m
}

func newTestCache() *Cache {
	c := New()
	c.SetBank(register.Holding, bankMap(holdingFixture))
	c.SetBank(register.Input, bankMap(inputFixture))
	return c
}
