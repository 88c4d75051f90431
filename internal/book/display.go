package book

// Meta is the display metadata for a status value: the human label, an icon
// identifier and a badge style class.
type Meta struct {
	Label string
	Icon  string
	Class string
}

var statusMeta = map[Status]Meta{
	StatusBelumDibaca:  {Label: "Belum Dibaca", Icon: "clock", Class: "bg-gray-100 text-gray-700 border-gray-200"},
	StatusSedangDibaca: {Label: "Sedang Dibaca", Icon: "book-open", Class: "bg-blue-100 text-blue-700 border-blue-200"},
	StatusSudahDibaca:  {Label: "Sudah Dibaca", Icon: "check-circle", Class: "bg-green-100 text-green-700 border-green-200"},
	StatusFavorit:      {Label: "Favorit", Icon: "heart", Class: "bg-rose-100 text-rose-700 border-rose-200"},
}

var genreClass = map[Genre]string{
	GenreFiksi:       "bg-purple-50 text-purple-700",
	GenreNonFiksi:    "bg-blue-50 text-blue-700",
	GenreMisteri:     "bg-gray-50 text-gray-700",
	GenreRomantis:    "bg-pink-50 text-pink-700",
	GenreFantasi:     "bg-indigo-50 text-indigo-700",
	GenreSejarah:     "bg-amber-50 text-amber-700",
	GenreBiografi:    "bg-teal-50 text-teal-700",
	GenreSains:       "bg-cyan-50 text-cyan-700",
	GenreTeknologi:   "bg-slate-50 text-slate-700",
	GenreBisnis:      "bg-emerald-50 text-emerald-700",
	GenreSelfHelp:    "bg-orange-50 text-orange-700",
	GenreHoror:       "bg-red-50 text-red-700",
	GenreThriller:    "bg-violet-50 text-violet-700",
	GenreKomedi:      "bg-yellow-50 text-yellow-700",
	GenreDrama:       "bg-rose-50 text-rose-700",
	GenrePetualangan: "bg-lime-50 text-lime-700",
}

// StatusMeta returns the display metadata for s. An unknown status falls
// back to the "belum_dibaca" entry rather than rendering nothing.
func StatusMeta(s Status) Meta {
	if m, ok := statusMeta[s]; ok {
		return m
	}
	return statusMeta[StatusBelumDibaca]
}

// GenreClass returns the badge style class for g, or a neutral class when
// the genre is not one of the known values.
func GenreClass(g Genre) string {
	if c, ok := genreClass[g]; ok {
		return c
	}
	return "bg-gray-50 text-gray-700"
}
