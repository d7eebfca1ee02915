package catalog

// maxFeedings bounds the walk along one fruit's direction. Every channel
// moves by 5 per feeding, so 52 feedings always leave the 0..255 range.
const maxFeedings = 52

// Derive computes the transform table from the colors' RGB values.
//
// An ordinary fruit is fed repeatedly starting from the color's exact RGB
// until the nearest catalog color changes; that color becomes the
// destination and the number of feedings becomes the units. If a channel
// leaves 0..255 first there is no transform for that fruit. The discount
// fruit resets every other color to the default one for a single unit.
func Derive(colors []Color, defaultColor ColorID) []Transform {
	var out []Transform

	for _, col := range colors {
		for _, fruit := range Fruits() {
			if fruit.IsDiscount() {
				if col.ID != defaultColor {
					out = append(out, Transform{From: col.ID, Fruit: fruit, To: defaultColor, Units: 1})
				}
				continue
			}

			if t, ok := walk(colors, col, fruit); ok {
				out = append(out, t)
			}
		}
	}

	return out
}

func walk(colors []Color, from Color, fruit Fruit) (Transform, bool) {
	dr, dg, db := fruit.Effect()
	cur := from.RGB

	for units := 1; units <= maxFeedings; units++ {
		next, ok := cur.AddSigned(dr, dg, db)
		if !ok {
			return Transform{}, false
		}
		cur = next

		if to := nearest(colors, cur); to != from.ID {
			return Transform{From: from.ID, Fruit: fruit, To: to, Units: units}, true
		}
	}

	return Transform{}, false
}
