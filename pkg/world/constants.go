package world

import "strings"

// Object numbers referenced by game logic.
const (
	Keys      = 1
	Lamp      = 2
	Grate     = 3
	Cage      = 4
	Rod       = 5
	Rod2      = 6 // Dynamite, placed in the repository when the cave closes
	Steps     = 7
	Bird      = 8
	Door      = 9
	Pillow    = 10
	Snake     = 11
	Fissure   = 12
	Tablet    = 13
	Clam      = 14
	Oyster    = 15
	Magazine  = 16
	Dwarf     = 17
	Knife     = 18
	Food      = 19
	Bottle    = 20
	Water     = 21
	Oil       = 22
	Mirror    = 23
	Plant     = 24
	Plant2    = 25
	Axe       = 28
	Pirate    = 30
	Dragon    = 31
	Chasm     = 32
	Troll     = 33
	Troll2    = 34
	Bear      = 35
	Message   = 36
	Batteries = 39

	Gold     = 50
	Diamonds = 51
	Silver   = 52
	Jewelry  = 53
	Coins    = 54
	Chest    = 55
	Eggs     = 56
	Trident  = 57
	Vase     = 58
	Emerald  = 59
	Pyramid  = 60
	Pearl    = 61
	Rug      = 62
	Spices   = 63
	Chain    = 64
)

// FirstTreasure is the lowest treasure object number.
const FirstTreasure = 50

// Room numbers referenced by game logic.
const (
	StartRoom      = 1
	BuildingRoom   = 3
	DeepRoom       = 15 // First room below the surface area
	FissureEast    = 17
	FissureWest    = 27
	Y2Room         = 33
	GiantRoom      = 92
	PloverRoom     = 100
	CulDeSac       = 105
	WittsEnd       = 108
	StashRoom      = 114
	RepositoryNE   = 115
	RepositorySW   = 116
	ChasmSouthWest = 117
	ChasmNorthEast = 122
	BarrenRoom     = 130 // Where the bear is chained
)

// Motion numbers referenced by game logic.
const (
	MotionBack   = 8
	MotionOut    = 11
	MotionIn     = 19
	MotionUp     = 29
	MotionDown   = 30
	MotionEast   = 43
	MotionWest   = 44
	MotionNorth  = 45
	MotionSouth  = 46
	MotionNE     = 47
	MotionSE     = 48
	MotionSW     = 49
	MotionNW     = 50
	MotionLook   = 57
	MotionXyzzy  = 62
	MotionPlugh  = 65
	MotionPlover = 71
)

// DirectionLabels maps compass-style motion numbers to display labels.
var DirectionLabels = map[int]string{
	MotionNorth: "North",
	MotionSouth: "South",
	MotionEast:  "East",
	MotionWest:  "West",
	MotionUp:    "Up",
	MotionDown:  "Down",
	MotionIn:    "In",
	MotionOut:   "Out",
	MotionNE:    "NE",
	MotionSE:    "SE",
	MotionSW:    "SW",
	MotionNW:    "NW",
}

// MagicWords are the teleport motions that stop working once the cave
// starts closing.
var MagicWords = map[int]bool{
	MotionXyzzy:  true,
	MotionPlugh:  true,
	MotionPlover: true,
}

// The legacy data stores words truncated to five characters. longWords
// restores the full spelling for display and lookup.
var longWords = buildLongWords(`upstream downstream forest forward continue onward return
	retreat valley staircase outside building stream cobble inward inside
	surface nowhere passage tunnel canyon awkward upward ascend downward
	descend outdoors barren across debris broken examine describe slabroom
	depression entrance secret bedquilt plover oriental cavern reservoir
	office headlamp lantern pillow velvet fissure tablet oyster magazine
	spelunker dwarves knives rations bottle mirror beanstalk stalactite
	shadow figure drawings pirate dragon message volcano geyser machine
	vending batteries carpet nuggets diamonds silver jewelry treasure
	trident shards pottery emerald platinum pyramid pearl persian spices
	capture release discard mumble unlock nothing extinguish placate travel
	proceed continue explore follow attack strike devour inventory detonate
	ignite blowup peruse shatter disturb suspend sesame opensesame
	abracadabra shazam excavate information`)

func buildLongWords(list string) map[string]string {
	out := make(map[string]string)
	for _, w := range strings.Fields(list) {
		out[Truncate(w)] = w
	}
	return out
}

// SignificantChars is the matching granularity of the vocabulary.
const SignificantChars = 5

// Truncate cuts a word down to its significant prefix.
func Truncate(word string) string {
	if r := []rune(word); len(r) > SignificantChars {
		return string(r[:SignificantChars])
	}
	return word
}

// ExpandWord maps a five-character prefix back to its long form. Words
// without a long form are returned unchanged.
func ExpandWord(word string) string {
	if long, ok := longWords[word]; ok {
		return long
	}
	return word
}
