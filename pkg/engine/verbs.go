package engine

import "github.com/jwebster45206/adventure-engine/pkg/state"

// Verb is the closed set of actions the engine understands.
type Verb int

const (
	VerbTake Verb = iota + 1
	VerbDrop
	VerbOpen
	VerbClose
	VerbOn
	VerbOff
	VerbLook
	VerbInventory
	VerbScore
	VerbQuit
	VerbEat
	VerbDrink
	VerbPour
	VerbFill
	VerbWave
	VerbThrow
	VerbAttack
	VerbFeed
	VerbRead
	VerbBreak
	VerbFind
	VerbSay
	VerbBrief
	VerbHelp
	VerbBlast
	VerbHint
	VerbGo
	VerbSwim
	VerbNothing
	VerbSave
)

var verbNames = map[Verb]string{
	VerbTake:      "take",
	VerbDrop:      "drop",
	VerbOpen:      "open",
	VerbClose:     "close",
	VerbOn:        "on",
	VerbOff:       "off",
	VerbLook:      "look",
	VerbInventory: "inventory",
	VerbScore:     "score",
	VerbQuit:      "quit",
	VerbEat:       "eat",
	VerbDrink:     "drink",
	VerbPour:      "pour",
	VerbFill:      "fill",
	VerbWave:      "wave",
	VerbThrow:     "throw",
	VerbAttack:    "attack",
	VerbFeed:      "feed",
	VerbRead:      "read",
	VerbBreak:     "break",
	VerbFind:      "find",
	VerbSay:       "say",
	VerbBrief:     "brief",
	VerbHelp:      "help",
	VerbBlast:     "blast",
	VerbHint:      "hint",
	VerbGo:        "go",
	VerbSwim:      "swim",
	VerbNothing:   "nothing",
	VerbSave:      "save",
}

func (v Verb) String() string {
	if name, ok := verbNames[v]; ok {
		return name
	}
	return "unknown"
}

// verbTable maps five-character tokens to verbs.
var verbTable = map[string]Verb{
	"take": VerbTake, "get": VerbTake, "carry": VerbTake, "catch": VerbTake,
	"steal": VerbTake, "captu": VerbTake, "tote": VerbTake,
	"drop": VerbDrop, "relea": VerbDrop, "disca": VerbDrop, "dump": VerbDrop, "free": VerbDrop,
	"open": VerbOpen, "unloc": VerbOpen,
	"close": VerbClose, "lock": VerbClose,
	"on": VerbOn, "light": VerbOn,
	"off": VerbOff, "extin": VerbOff,
	"look": VerbLook, "l": VerbLook, "exami": VerbLook, "descr": VerbLook,
	"inven": VerbInventory, "i": VerbInventory,
	"score": VerbScore,
	"quit": VerbQuit, "q": VerbQuit,
	"eat": VerbEat, "devou": VerbEat,
	"drink": VerbDrink,
	"pour": VerbPour,
	"fill": VerbFill,
	"wave": VerbWave, "shake": VerbWave, "swing": VerbWave,
	"throw": VerbThrow, "toss": VerbThrow,
	"kill": VerbAttack, "attac": VerbAttack, "fight": VerbAttack, "hit": VerbAttack,
	"strik": VerbAttack, "slay": VerbAttack,
	"feed": VerbFeed,
	"read": VerbRead, "perus": VerbRead,
	"break": VerbBreak, "shatt": VerbBreak, "smash": VerbBreak,
	"find": VerbFind, "where": VerbFind,
	"say": VerbSay, "chant": VerbSay, "sing": VerbSay, "utter": VerbSay, "mumbl": VerbSay,
	"brief": VerbBrief,
	"help": VerbHelp, "info": VerbHelp, "infor": VerbHelp, "?": VerbHelp,
	"blast": VerbBlast, "deton": VerbBlast, "ignit": VerbBlast, "blowu": VerbBlast,
	"hint": VerbHint,
	"go": VerbGo, "walk": VerbGo, "run": VerbGo, "trave": VerbGo, "proce": VerbGo,
	"explo": VerbGo, "follo": VerbGo,
	"swim": VerbSwim,
	"nothi": VerbNothing,
	"save": VerbSave, "suspe": VerbSave,
}

type handler func(e *Engine, gs *state.GameState, noun string) string

var handlers map[Verb]handler

func init() {
	handlers = map[Verb]handler{
		VerbTake:      (*Engine).take,
		VerbDrop:      (*Engine).drop,
		VerbOpen:      (*Engine).open,
		VerbClose:     (*Engine).close,
		VerbOn:        (*Engine).lampOn,
		VerbOff:       (*Engine).lampOff,
		VerbLook:      (*Engine).look,
		VerbInventory: (*Engine).inventory,
		VerbScore:     (*Engine).score,
		VerbQuit:      (*Engine).quit,
		VerbEat:       (*Engine).eat,
		VerbDrink:     (*Engine).drink,
		VerbPour:      (*Engine).pour,
		VerbFill:      (*Engine).fill,
		VerbWave:      (*Engine).wave,
		VerbThrow:     (*Engine).throw,
		VerbAttack:    (*Engine).attack,
		VerbFeed:      (*Engine).feed,
		VerbRead:      (*Engine).read,
		VerbBreak:     (*Engine).breakObject,
		VerbFind:      (*Engine).find,
		VerbSay:       (*Engine).say,
		VerbBrief:     (*Engine).brief,
		VerbHelp:      (*Engine).help,
		VerbBlast:     (*Engine).blast,
		VerbHint:      (*Engine).hint,
		VerbGo:        (*Engine).goVerb,
		VerbSwim:      staticReply("I don't know how."),
		VerbNothing:   staticReply(msgOK),
		VerbSave:      staticReply("Your game is saved automatically after every move."),
	}
}

func staticReply(text string) handler {
	return func(*Engine, *state.GameState, string) string { return text }
}
