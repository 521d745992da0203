// Package icons resolves project display names to bundled icon assets.
//
// The project table is static and read-only after package initialization.
// Names are matched through a canonical key (case-folded, diacritics removed,
// punctuation collapsed to dashes) so "DAO.Casino", "dao casino" and
// "Dao-Casino" land on the same entry. Unknown names resolve to the default
// icon instead of failing.
//
// The package also carries the small set of Lucide glyphs the web surface
// draws for controls (search, wallet, chart).
package icons
