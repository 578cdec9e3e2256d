// Package specs derives placeholder specification sheets for catalog products.
//
// Bundles are not authoritative. They are computed from the product ID alone
// so the same product shows the same rows in every comparison surface, across
// runs, without a specifications backend.
package specs

// Bundle is the fixed set of display specifications shown in comparison rows.
type Bundle struct {
	Processor string
	RAM       string
	Storage   string
	Display   string
	Camera    string
	Battery   string
	OS        string
}

// Field pairs a row label with the accessor for that row's value.
type Field struct {
	Label string
	Value func(Bundle) string
}

// Fields lists the bundle rows in display order.
var Fields = []Field{
	{Label: "Processor", Value: func(b Bundle) string { return b.Processor }},
	{Label: "RAM", Value: func(b Bundle) string { return b.RAM }},
	{Label: "Storage", Value: func(b Bundle) string { return b.Storage }},
	{Label: "Display", Value: func(b Bundle) string { return b.Display }},
	{Label: "Camera", Value: func(b Bundle) string { return b.Camera }},
	{Label: "Battery", Value: func(b Bundle) string { return b.Battery }},
	{Label: "OS", Value: func(b Bundle) string { return b.OS }},
}

var (
	processors = []string{
		"Snapdragon 8 Gen 3",
		"Apple A17 Pro",
		"Dimensity 9300",
		"Google Tensor G3",
		"Exynos 2400",
	}
	ramOptions = []string{
		"6 GB",
		"8 GB",
		"12 GB",
		"16 GB",
	}
	storageOptions = []string{
		"128 GB",
		"256 GB",
		"512 GB",
		"1 TB",
	}
	displays = []string{
		`6.1" OLED, 120Hz`,
		`6.7" AMOLED, 120Hz`,
		`6.5" LCD, 90Hz`,
		`6.8" Dynamic AMOLED, 144Hz`,
		`6.3" LTPO OLED, 120Hz`,
	}
	cameras = []string{
		"50MP + 12MP",
		"48MP + 12MP + 12MP",
		"200MP + 12MP + 10MP",
		"64MP + 8MP",
		"50MP + 48MP + 10MP",
	}
	batteries = []string{
		"4000 mAh",
		"4500 mAh",
		"5000 mAh",
		"5500 mAh",
	}
	operatingSystems = []string{
		"Android 14",
		"iOS 17",
		"HarmonyOS 4",
		"Android 13",
	}
)

// Seed sums the code points of id. Invalid UTF-8 bytes count as U+FFFD.
func Seed(id string) int {
	seed := 0
	for _, r := range id {
		seed += int(r)
	}
	return seed
}

// Derive returns the bundle for id. Different IDs with the same code point
// sum ("ab" and "ba") share a bundle.
func Derive(id string) Bundle {
	seed := Seed(id)
	return Bundle{
		Processor: pick(processors, seed),
		RAM:       pick(ramOptions, seed),
		Storage:   pick(storageOptions, seed),
		Display:   pick(displays, seed),
		Camera:    pick(cameras, seed),
		Battery:   pick(batteries, seed),
		OS:        pick(operatingSystems, seed),
	}
}

func pick(candidates []string, seed int) string {
	return candidates[seed%len(candidates)]
}
