package stoplist

// german lists function words that carry no topical signal in German SERP
// titles and snippets. Entries of two letters or fewer are kept so the list
// stays usable with a lower minimum token length.
var german = []string{
	// articles
	"der", "die", "das", "den", "dem", "des",
	"ein", "eine", "einer", "eines", "einem", "einen",
	// pronouns
	"ich", "du", "er", "sie", "es", "wir", "ihr",
	"mich", "dich", "sich", "uns", "euch", "ihm", "ihn", "ihnen",
	"mein", "meine", "meinen", "meiner", "dein", "deine",
	"sein", "seine", "seinen", "seiner", "ihre", "ihren", "ihrer",
	"unser", "unsere", "euer", "eure",
	"dies", "diese", "dieser", "dieses", "diesem", "diesen",
	"jene", "jener", "jenes", "man", "wer", "was", "welche", "welcher", "welches",
	// prepositions
	"an", "auf", "aus", "bei", "bis", "durch", "für", "gegen", "hinter",
	"in", "im", "ins", "mit", "nach", "neben", "ohne", "seit", "über",
	"um", "unter", "von", "vom", "vor", "zu", "zum", "zur", "zwischen",
	"am", "beim", "ab", "per", "pro", "trotz", "während", "wegen",
	// conjunctions
	"und", "oder", "aber", "denn", "sondern", "doch", "dass", "daß",
	"weil", "wenn", "als", "ob", "obwohl", "damit", "sowie", "sodass",
	"wie", "wo", "wann", "warum", "weshalb", "wieso",
	// auxiliary and modal verbs
	"ist", "sind", "war", "waren", "bin", "bist", "seid", "wird",
	"werden", "wurde", "wurden", "worden", "hat", "haben", "hatte",
	"hatten", "habe", "hast", "kann", "können", "konnte", "muss",
	"müssen", "musste", "soll", "sollen", "sollte", "will", "wollen",
	"darf", "dürfen", "mag", "möchte", "möchten", "gibt", "geht",
	// adverbs and particles
	"nicht", "auch", "noch", "nur", "schon", "sehr", "mehr", "so",
	"hier", "dort", "da", "dann", "jetzt", "immer", "wieder", "heute",
	"bereits", "etwa", "ganz", "viel", "viele", "vielen",
	"alle", "allen", "aller", "alles", "andere", "anderen", "einige",
	"kein", "keine", "keinen", "keiner", "jeder", "jede", "jedes",
	"sowohl", "zudem", "also", "eben", "mal", "ja", "nein", "oft",
}

// German returns a copy of the built-in German stopword list.
func German() []string {
	out := make([]string, len(german))
	copy(out, german)
	return out
}
