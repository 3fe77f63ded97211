package cave

import "fmt"

// Kind identifies what occupies a cell. The set is closed: every rule
// dispatch switches over all of it.
type Kind uint8

const (
	Space Kind = iota
	Dirt
	BrickWall
	MagicWall
	PreOutbox
	FlashingOutbox
	SteelWall
	Firefly
	Boulder
	BoulderFalling
	Diamond
	DiamondFalling
	ExplodeToSpace
	ExplodeToDiamond
	PreRockford
	Butterfly
	Rockford
	Amoeba

	kindCount
)

var kindNames = [kindCount]string{
	Space:            "space",
	Dirt:             "dirt",
	BrickWall:        "brick-wall",
	MagicWall:        "magic-wall",
	PreOutbox:        "pre-outbox",
	FlashingOutbox:   "outbox",
	SteelWall:        "steel-wall",
	Firefly:          "firefly",
	Boulder:          "boulder",
	BoulderFalling:   "boulder-falling",
	Diamond:          "diamond",
	DiamondFalling:   "diamond-falling",
	ExplodeToSpace:   "explode-to-space",
	ExplodeToDiamond: "explode-to-diamond",
	PreRockford:      "pre-rockford",
	Butterfly:        "butterfly",
	Rockford:         "rockford",
	Amoeba:           "amoeba",
}

// String returns the kind name.
func (k Kind) String() string {
	if k >= kindCount {
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// Object is the content of one cell.
//
// Dir is only meaningful for fireflies and butterflies. Stage holds the
// explosion stage (0-4) or the pre-Rockford stage (1-4). Scanned marks an
// object already handled during the current pass; renderers ignore it.
type Object struct {
	Kind    Kind
	Dir     Dir
	Stage   uint8
	Scanned bool
}

// Obj returns an unscanned object of the given kind.
func Obj(k Kind) Object {
	return Object{Kind: k}
}

// Insect returns a firefly or butterfly facing d.
func Insect(k Kind, d Dir) Object {
	return Object{Kind: k, Dir: d}
}

// Explosion returns an explosion cell at the given stage.
func Explosion(toDiamond bool, stage uint8) Object {
	if toDiamond {
		return Object{Kind: ExplodeToDiamond, Stage: stage}
	}
	return Object{Kind: ExplodeToSpace, Stage: stage}
}

// Unscanned returns o with the scan marker cleared.
func (o Object) Unscanned() Object {
	o.Scanned = false
	return o
}

// Marked returns o with the scan marker set.
func (o Object) Marked() Object {
	o.Scanned = true
	return o
}

// Is reports whether o has kind k, in any scan state.
func (o Object) Is(k Kind) bool {
	return o.Kind == k
}

// IsRounded reports whether falling objects roll off o.
func (o Object) IsRounded() bool {
	switch o.Kind {
	case Boulder, Diamond, BrickWall:
		return true
	}
	return false
}

// IsImpactExplosive reports whether a falling object landing on o sets off
// an explosion.
func (o Object) IsImpactExplosive() bool {
	switch o.Kind {
	case Rockford, Firefly, Butterfly:
		return true
	}
	return false
}

// IsFalling reports whether o is a boulder or diamond in motion.
func (o Object) IsFalling() bool {
	return o.Kind == BoulderFalling || o.Kind == DiamondFalling
}

// IsFallable reports whether o is a boulder or diamond in any state.
func (o Object) IsFallable() bool {
	switch o.Kind {
	case Boulder, BoulderFalling, Diamond, DiamondFalling:
		return true
	}
	return false
}

// IsExplosion reports whether o is an explosion stage of either type.
func (o Object) IsExplosion() bool {
	return o.Kind == ExplodeToSpace || o.Kind == ExplodeToDiamond
}

// String renders the object for logs and test failures.
func (o Object) String() string {
	s := o.Kind.String()
	switch o.Kind {
	case Firefly, Butterfly:
		s += "/" + o.Dir.String()
	case ExplodeToSpace, ExplodeToDiamond, PreRockford:
		s += fmt.Sprintf("/%d", o.Stage)
	}
	if o.Scanned {
		s += "*"
	}
	return s
}

// Legacy 6-bit object codes used by cave data.
const (
	codeFirefly      = 0x08
	codeBoulder      = 0x10
	codeDiamond      = 0x14
	codeExplodeSpace = 0x1B
	codeExplodeDiam  = 0x20
	codePreRockford  = 0x25
	codeButterfly    = 0x30
	codeRockford     = 0x38
	codeAmoeba       = 0x3A
)

// Legacy codes list firefly positions left, up, right, down and butterfly
// positions down, left, up, right.
var (
	fireflyDirs   = [4]Dir{DirLeft, DirUp, DirRight, DirDown}
	butterflyDirs = [4]Dir{DirDown, DirLeft, DirUp, DirRight}
)

// FromCode decodes a legacy object code. Unknown codes mean corrupt cave
// data and panic.
func FromCode(code byte) Object {
	switch {
	case code <= 0x05:
		return Obj(Kind(code))
	case code == 0x07:
		return Obj(SteelWall)
	case code >= codeFirefly && code < codeFirefly+8:
		o := Insect(Firefly, fireflyDirs[(code-codeFirefly)&3])
		o.Scanned = code >= codeFirefly+4
		return o
	case code >= codeBoulder && code < codeBoulder+8:
		off := code - codeBoulder
		kinds := [4]Kind{Boulder, BoulderFalling, Diamond, DiamondFalling}
		return Object{Kind: kinds[off/2], Scanned: off%2 == 1}
	case code >= codeExplodeSpace && code < codeExplodeSpace+5:
		return Explosion(false, code-codeExplodeSpace)
	case code >= codeExplodeDiam && code < codeExplodeDiam+5:
		return Explosion(true, code-codeExplodeDiam)
	case code >= codePreRockford && code < codePreRockford+4:
		return Object{Kind: PreRockford, Stage: code - codePreRockford + 1}
	case code >= codeButterfly && code < codeButterfly+8:
		o := Insect(Butterfly, butterflyDirs[(code-codeButterfly)&3])
		o.Scanned = code >= codeButterfly+4
		return o
	case code == codeRockford || code == codeRockford+1:
		return Object{Kind: Rockford, Scanned: code == codeRockford+1}
	case code == codeAmoeba || code == codeAmoeba+1:
		return Object{Kind: Amoeba, Scanned: code == codeAmoeba+1}
	}
	panic(fmt.Sprintf("cave: unknown object code 0x%02X", code))
}

// Code encodes o back into its legacy object code.
func (o Object) Code() byte {
	var scanned byte
	if o.Scanned {
		scanned = 1
	}
	switch o.Kind {
	case Space, Dirt, BrickWall, MagicWall, PreOutbox, FlashingOutbox:
		return byte(o.Kind)
	case SteelWall:
		return 0x07
	case Firefly:
		return codeFirefly + indexOf(fireflyDirs, o.Dir) + scanned*4
	case Boulder:
		return codeBoulder + scanned
	case BoulderFalling:
		return codeBoulder + 2 + scanned
	case Diamond:
		return codeDiamond + scanned
	case DiamondFalling:
		return codeDiamond + 2 + scanned
	case ExplodeToSpace:
		return codeExplodeSpace + o.Stage
	case ExplodeToDiamond:
		return codeExplodeDiam + o.Stage
	case PreRockford:
		return codePreRockford + o.Stage - 1
	case Butterfly:
		return codeButterfly + indexOf(butterflyDirs, o.Dir) + scanned*4
	case Rockford:
		return codeRockford + scanned
	case Amoeba:
		return codeAmoeba + scanned
	}
	panic(fmt.Sprintf("cave: no code for %v", o))
}

func indexOf(dirs [4]Dir, d Dir) byte {
	for i, v := range dirs {
		if v == d {
			return byte(i)
		}
	}
	panic(fmt.Sprintf("cave: invalid direction %d", d))
}
