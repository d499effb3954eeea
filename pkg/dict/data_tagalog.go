package dict

// Compiled-in Tagalog data. The corrections map leans heavily on text-speak
// shortenings since those dominate campus posts; they are corrected softly
// (warnings) by the spell checker.

var tagalogWords = []string{
	"ang", "ng", "sa", "na", "at", "ay", "mga", "si", "ni", "kay",
	"ako", "ikaw", "ka", "siya", "kami", "tayo", "kayo", "sila",
	"ko", "mo", "niya", "namin", "natin", "ninyo", "nila",
	"ito", "iyan", "iyon", "dito", "diyan", "doon",
	"hindi", "oo", "opo", "wala", "meron", "mayroon", "may",
	"ba", "po", "naman", "lang", "din", "rin", "daw", "raw", "pa",
	"ano", "sino", "saan", "kailan", "bakit", "paano", "ilan", "alin",
	"kung", "dahil", "kasi", "pero", "o", "para", "upang", "habang",
	"bago", "pagkatapos", "ngayon", "kanina", "mamaya", "bukas",
	"kahapon", "araw", "gabi", "umaga", "hapon", "tanghali", "linggo",
	"buwan", "taon", "oras", "minuto", "petsa",
	"magandang", "maganda", "mabuti", "masama", "malaki", "maliit",
	"marami", "konti", "lahat", "iba", "pareho", "bawat",
	"tao", "bata", "babae", "lalaki", "pamilya", "magulang", "kapatid",
	"kaibigan", "kaklase", "guro", "estudyante", "paaralan", "eskwela",
	"klase", "aralin", "takdang", "pagsusulit", "proyekto", "grado",
	"silid", "aklatan", "aklat", "papel", "lapis", "bolpen",
	"pagpupulong", "pulong", "samahan", "organisasyon", "opisyal",
	"kasapi", "miyembro", "patalastas", "paalala", "balita", "anunsyo",
	"gawain", "trabaho", "tulong", "tanong", "sagot", "sulat", "basa",
	"basahin", "sumulat", "magbasa", "mag-aral", "aral", "turo",
	"punta", "pumunta", "dumating", "umalis", "bumalik", "sumali",
	"dalhin", "dala", "kuha", "kunin", "bigay", "ibigay", "ibibigay",
	"gawa", "gawin", "gagawin", "ginawa", "tapos", "tapusin",
	"simula", "simulan", "magsimula", "handa", "ihanda",
	"kailangan", "dapat", "pwede", "puwede", "maaari", "gusto", "ayaw",
	"alam", "kilala", "tingin", "tignan", "tingnan", "kita", "nakita",
	"sabi", "sabihin", "sinabi", "salita", "wika", "tagalog", "ingles",
	"salamat", "walang", "anuman", "pasensya", "paumanhin", "mabuhay",
	"kumusta", "sige", "tara", "halika", "teka", "sandali",
	"malapit", "malayo", "loob", "labas", "taas", "baba", "gitna",
	"kanan", "kaliwa", "harap", "likod", "tabi",
	"isa", "dalawa", "tatlo", "apat", "lima", "anim", "pito", "walo",
	"siyam", "sampu", "daan", "libo",
	"pagkain", "tubig", "bahay", "paligsahan", "palaro", "pagdiriwang",
	"pista", "bakasyon", "pasukan", "pasko", "bagong",
	"gagamba", "tangan", "putahe", "putakte",
}

var tagalogCorrections = []Correction{
	{"kelan", "kailan"},
	{"cge", "sige"},
	{"sge", "sige"},
	{"dn", "din"},
	{"rn", "rin"},
	{"nmn", "naman"},
	{"lng", "lang"},
	{"wla", "wala"},
	{"mron", "mayroon"},
	{"d2", "dito"},
	{"jan", "diyan"},
	{"dyan", "diyan"},
	{"dun", "doon"},
	{"aq", "ako"},
	{"aco", "ako"},
	{"ikw", "ikaw"},
	{"sya", "siya"},
	{"cya", "siya"},
	{"kau", "kayo"},
	{"cla", "sila"},
	{"nya", "niya"},
	{"nla", "nila"},
	{"qng", "kung"},
	{"kc", "kasi"},
	{"ksi", "kasi"},
	{"pra", "para"},
	{"pro", "pero"},
	{"hnd", "hindi"},
	{"hndi", "hindi"},
	{"di", "hindi"},
	{"bkit", "bakit"},
	{"bkt", "bakit"},
	{"cno", "sino"},
	{"anu", "ano"},
	{"ngaun", "ngayon"},
	{"ngyon", "ngayon"},
	{"slamat", "salamat"},
	{"tnx", "salamat"},
	{"gnda", "maganda"},
	{"pwd", "pwede"},
	{"pde", "pwede"},
	{"dpat", "dapat"},
	{"txt", "text"},
	{"gud", "good"},
}

var tagalogRoots = []string{
	"putangina",
	"tangina",
	"kingina",
	"puta",
	"gago",
	"gaga",
	"tanga",
	"bobo",
	"tarantado",
	"ulol",
	"punyeta",
	"leche",
	"hinayupak",
	"hayop",
	"pakyu",
	"bwisit",
	"inutil",
	"engot",
}
