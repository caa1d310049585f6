package genre

import "strings"

// Prefix is prepended to every vocabulary label to form its column name.
const Prefix = "genres_"

// Vocabulary is the closed set of genres the popularity model was fit against,
// in column order.
var Vocabulary = []string{
	"Afro",
	"Alternative",
	"Ambient",
	"Blues",
	"Christian & Gospel",
	"Classical",
	"Country",
	"Dance/Electronic",
	"Folk & Acoustic",
	"Hip-Hop",
	"Instrumental",
	"Indie",
	"Jazz",
	"K-Pop",
	"Latin",
	"Metal",
	"Pop",
	"Punk",
	"R&B",
	"Rock",
	"Soul",
}

// Width is the number of one-hot columns an encoded Vector has.
var Width = len(Vocabulary)

// resetGenre zeroes the whole row when seen.
// Kept from a presentation hotfix; drop it once the model owners confirm.
const resetGenre = "schlager"

var (
	// normalized label -> column index
	index  = make(map[string]int, len(Vocabulary))
	hipHop int
	kPop   int
	pop    int
)

func init() {
	for i, label := range Vocabulary {
		index[strings.ToLower(label)] = i
	}
	hipHop = index["hip-hop"]
	kPop = index["k-pop"]
	pop = index["pop"]
}

// Vector is a one-hot genre row, one cell per Vocabulary entry.
type Vector []float64

// Columns returns the prefixed column names in vocabulary order.
func Columns() []string {
	cols := make([]string, len(Vocabulary))
	for i, label := range Vocabulary {
		cols[i] = Prefix + label
	}
	return cols
}

// Active returns the vocabulary labels set in v.
func (v Vector) Active() []string {
	var out []string
	for i, cell := range v {
		if cell == 1 {
			out = append(out, Vocabulary[i])
		}
	}
	return out
}

// Encode maps free-text artist genres onto the vocabulary.
//
// Each genre sets at most one column: the lowest-index column among its exact
// match, Hip-Hop (contains "hip hop" or "rap"), K-Pop (is exactly "k-pop") and
// Pop (contains "pop" otherwise). Unknown genres are dropped. A "schlager"
// genre clears every column set so far, including by earlier genres.
func Encode(genres []string) Vector {
	v := make(Vector, Width)
	for _, g := range genres {
		g = strings.ToLower(g)

		best := -1
		consider := func(i int) {
			if best == -1 || i < best {
				best = i
			}
		}

		if i, ok := index[g]; ok {
			consider(i)
		}
		if strings.Contains(g, "hip hop") || strings.Contains(g, "rap") {
			consider(hipHop)
		}
		if g == "k-pop" {
			consider(kPop)
		} else if strings.Contains(g, "pop") {
			consider(pop)
		}

		if best >= 0 {
			v[best] = 1
		}

		if g == resetGenre {
			for i := range v {
				v[i] = 0
			}
		}
	}
	return v
}
