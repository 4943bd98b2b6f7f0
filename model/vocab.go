package model

// CDGenres is the fixed genre vocabulary offered by the add/edit forms for
// audio discs. Free text is still accepted at save time.
var CDGenres = []string{
	"Rock",
	"Pop",
	"Classical",
	"Classical Compilation",
	"Compilation",
	"Jazz",
	"Blues",
	"Country",
	"Electronic",
	"Folk",
	"Hip Hop",
	"R&B/Soul",
	"Metal",
	"Punk",
	"Reggae",
	"Alternative",
	"Indie",
	"World Music",
	"Soundtrack",
	"Opera",
	"Gospel",
	"Dance",
	"Other",
}

// DVDGenres is the fixed genre vocabulary for video discs.
var DVDGenres = []string{
	"Action",
	"Adventure",
	"Animation",
	"Biography",
	"Comedy",
	"Crime",
	"Documentary",
	"Drama",
	"Family",
	"Fantasy",
	"Film Noir",
	"History",
	"Horror",
	"Musical",
	"Mystery",
	"Romance",
	"Sci-Fi",
	"Sport",
	"Thriller",
	"War",
	"Western",
	"Other",
}

// DVDRatings is the BBFC classification vocabulary.
var DVDRatings = []string{
	"U",
	"PG",
	"12",
	"12A",
	"15",
	"18",
	"R18",
	"TBC",
	"Unrated",
}
