package dict

// Compiled-in English data. Word lists are kept deliberately small: the
// spell checker stays silent on unknown-but-plausible tokens, so the set
// only needs to cover the vocabulary of typical announcements.

var englishWords = []string{
	"the", "be", "to", "of", "and", "a", "an", "in", "that", "have",
	"i", "it", "for", "not", "on", "with", "he", "as", "you", "do",
	"at", "this", "but", "his", "by", "from", "they", "we", "say", "her",
	"she", "or", "will", "my", "one", "all", "would", "there", "their",
	"what", "so", "up", "out", "if", "about", "who", "get", "which", "go",
	"me", "when", "make", "can", "like", "time", "no", "just", "him",
	"know", "take", "people", "into", "year", "your", "good", "some",
	"could", "them", "see", "other", "than", "then", "now", "look",
	"only", "come", "its", "over", "think", "also", "back", "after",
	"use", "two", "how", "our", "work", "first", "well", "way", "even",
	"new", "want", "because", "any", "these", "give", "day", "most", "us",
	"is", "are", "was", "were", "been", "being", "has", "had", "did",
	"does", "done", "should", "must", "might", "may", "shall", "am",
	"announcement", "schedule", "class", "classes", "student", "students",
	"teacher", "teachers", "professor", "officer", "officers", "member",
	"members", "organization", "meeting", "event", "events", "campus",
	"school", "university", "college", "department", "office", "room",
	"building", "library", "registration", "enrollment", "exam", "exams",
	"quiz", "project", "deadline", "submission", "requirements", "grade",
	"grades", "subject", "subjects", "course", "courses", "semester",
	"academic", "activity", "activities", "attendance", "holiday",
	"today", "tomorrow", "yesterday", "week", "month", "morning",
	"afternoon", "evening", "night", "date", "start", "end", "begin",
	"please", "thank", "thanks", "welcome", "hello", "everyone",
	"everybody", "someone", "somebody", "anyone", "anybody", "nobody",
	"each", "every", "join", "attend", "bring", "submit", "required",
	"optional", "open", "closed", "cancelled", "postponed", "moved",
	"reminder", "notice", "important", "urgent", "update", "updated",
	"available", "form", "forms", "signature", "approval", "request",
	"dog", "cat", "house", "car", "book", "friend", "water", "food",
	"weird", "receive", "believe", "separate", "definitely", "tomorrow",
	"until", "during", "before", "between", "without", "again", "against",
	"here", "where", "why", "very", "too", "more", "much", "many",
	"through", "around", "under", "above", "down", "off", "really",
	"something", "nothing", "everything", "anything", "going", "coming",
	"gone", "went", "came", "left", "stay", "stayed", "keep",
	"name", "place", "part", "number", "point", "word", "words", "text",
	"long", "little", "own", "old", "right", "wrong", "big", "small",
	"high", "different", "next", "early", "late", "young", "few",
	"public", "same", "able", "free", "best", "better", "last", "least",
	"hour", "hours", "minute", "minutes", "read", "write", "written",
	"note", "notes", "page", "pages", "line", "list", "check", "checked",
	"post", "posted", "share", "shared", "send", "sent", "reply",
	"question", "questions", "answer", "answers", "help", "contact",
	"email", "phone", "visit", "location", "venue", "hall", "gym",
	"field", "online", "link", "site", "portal", "account", "password",
}

var englishCorrections = []Correction{
	{"teh", "the"},
	{"recieve", "receive"},
	{"recieved", "received"},
	{"beleive", "believe"},
	{"wierd", "weird"},
	{"seperate", "separate"},
	{"definately", "definitely"},
	{"occured", "occurred"},
	{"untill", "until"},
	{"tommorow", "tomorrow"},
	{"tommorrow", "tomorrow"},
	{"alot", "a lot"},
	{"wich", "which"},
	{"becuase", "because"},
	{"becasue", "because"},
	{"freind", "friend"},
	{"thier", "their"},
	{"truely", "truly"},
	{"goverment", "government"},
	{"enviroment", "environment"},
	{"begining", "beginning"},
	{"calender", "calendar"},
	{"collegue", "colleague"},
	{"comming", "coming"},
	{"excercise", "exercise"},
	{"existance", "existence"},
	{"familar", "familiar"},
	{"grammer", "grammar"},
	{"immediatly", "immediately"},
	{"noticable", "noticeable"},
	{"occurence", "occurrence"},
	{"posession", "possession"},
	{"publically", "publicly"},
	{"reccomend", "recommend"},
	{"refered", "referred"},
	{"succesful", "successful"},
	{"sucessful", "successful"},
	{"suprise", "surprise"},
	{"writting", "writing"},
	{"acheive", "achieve"},
	{"aquire", "acquire"},
	{"arguement", "argument"},
	{"commitee", "committee"},
	{"accomodate", "accommodate"},
	{"anouncement", "announcement"},
	{"anounce", "announce"},
	{"scedule", "schedule"},
	{"shedule", "schedule"},
	{"attendence", "attendance"},
	{"seperated", "separated"},
}

var englishRoots = []string{
	"fuck",
	"shit",
	"bitch",
	"asshole",
	"ass",
	"bastard",
	"dick",
	"cock",
	"pussy",
	"whore",
	"slut",
	"cunt",
	"prick",
	"piss",
	"damn",
	"crap",
	"motherfucker",
	"douche",
}
