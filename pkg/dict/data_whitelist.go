package dict

// Whitelist entries: words and exact phrases that legitimately contain a
// flagged root and must never be reported by the scanner. Kept lowercase;
// multiword entries are matched by containment.
var whitelistEntries = []string{
	// english roots embedded in clean words
	"assassin",
	"assassination",
	"assessment",
	"assignment",
	"assembly",
	"association",
	"assistant",
	"assistance",
	"assume",
	"classic",
	"classical",
	"classroom",
	"class",
	"classes",
	"classmate",
	"pass",
	"passed",
	"passing",
	"passion",
	"passionate",
	"compass",
	"mass",
	"massive",
	"bass",
	"bassist",
	"grass",
	"glass",
	"brass",
	"embassy",
	"cockpit",
	"cocktail",
	"peacock",
	"hancock",
	"dickens",
	"dickinson",
	"shiitake",
	"scrap",
	"scrape",
	// z stands in for s in the substitution table, so zz words collide
	// with s-heavy roots ("pizza" reads as "piss")
	"pizza",
	"pizzas",
	"jazz",
	"buzz",
	"pushit", // brand name used by the bookstore
	// tagalog roots embedded in clean words
	"gagamba",
	"gagawin",
	"gagamitin",
	"gagabayan",
	"tangan",
	"tanganan",
	"putahe",
	"putakte",
	"kaputol",
	"lechon",
	"hayopan",
}
