package icons

import (
	"fmt"
	"sort"
	"strings"
)

// Entry describes a known project icon.
type Entry struct {
	// Name is the project display name the canonical key is derived from.
	Name string
	// Ticker is an optional upper-case alias. It only matches verbatim.
	Ticker string
	// Asset is the bundled image identifier.
	Asset string
}

// Key returns the canonical lookup key for the entry.
func (e Entry) Key() string {
	return Normalize(e.Name)
}

var catalog = []Entry{
	{Name: "0x", Ticker: "ZRX", Asset: "0x.png"},
	{Name: "Aeternity", Ticker: "AE", Asset: "aeternity.png"},
	{Name: "Aragon", Ticker: "ANT", Asset: "aragon.png"},
	{Name: "Augur", Ticker: "REP", Asset: "augur.png"},
	{Name: "Bancor", Ticker: "BNT", Asset: "bancor.png"},
	{Name: "Basic Attention Token", Ticker: "BAT", Asset: "basic-attention-token.png"},
	{Name: "Bibox Token", Ticker: "BIX", Asset: "bibox-token.png"},
	{Name: "Bigbom", Ticker: "BBO", Asset: "bigbom.png"},
	{Name: "Binance Coin", Ticker: "BNB", Asset: "binance-coin.png"},
	{Name: "BioCoin", Ticker: "BIO", Asset: "biocoin.png"},
	{Name: "Bitcoin", Ticker: "BTC", Asset: "bitcoin.png"},
	{Name: "BitBay", Ticker: "BAY", Asset: "bitbay.png"},
	{Name: "Civic", Ticker: "CVC", Asset: "civic.png"},
	{Name: "Cofound.it", Ticker: "CFI", Asset: "cofound-it.png"},
	{Name: "DAO.Casino", Ticker: "BET", Asset: "dao-casino.png"},
	{Name: "Decentraland", Ticker: "MANA", Asset: "decentraland.png"},
	{Name: "district0x", Ticker: "DNT", Asset: "district0x.png"},
	{Name: "Edgeless", Ticker: "EDG", Asset: "edgeless.png"},
	{Name: "Enigma", Ticker: "ENG", Asset: "enigma.png"},
	{Name: "EOS", Ticker: "EOS", Asset: "eos.png"},
	{Name: "Ethereum", Ticker: "ETH", Asset: "ethereum.png"},
	{Name: "FirstBlood", Ticker: "1ST", Asset: "firstblood.png"},
	{Name: "FunFair", Ticker: "FUN", Asset: "funfair.png"},
	{Name: "Gnosis", Ticker: "GNO", Asset: "gnosis.png"},
	{Name: "Golem", Ticker: "GNT", Asset: "golem.png"},
	{Name: "Humaniq", Ticker: "HMQ", Asset: "humaniq.png"},
	{Name: "iExec RLC", Ticker: "RLC", Asset: "iexec-rlc.png"},
	{Name: "Matchpool", Ticker: "GUP", Asset: "matchpool.png"},
	{Name: "Melon", Ticker: "MLN", Asset: "melon.png"},
	{Name: "Numeraire", Ticker: "NMR", Asset: "numeraire.png"},
	{Name: "OmiseGO", Ticker: "OMG", Asset: "omisego.png"},
	{Name: "Populous", Ticker: "PPT", Asset: "populous.png"},
	{Name: "Santiment", Ticker: "SAN", Asset: "santiment.png"},
	{Name: "SingularDTV", Ticker: "SNGLS", Asset: "singulardtv.png"},
	{Name: "Status", Ticker: "SNT", Asset: "status.png"},
	{Name: "Storj", Ticker: "STORJ", Asset: "storj.png"},
	{Name: "Substratum", Ticker: "SUB", Asset: "substratum.png"},
	{Name: "TenX", Ticker: "PAY", Asset: "tenx.png"},
	{Name: "Wings", Ticker: "WINGS", Asset: "wings.png"},
}

// index holds the catalog keyed by canonical name and by exact ticker.
type index struct {
	names   map[string]Entry
	tickers map[string]Entry
}

var byKey = mustIndex(catalog)

// lookup matches an upper-case ticker verbatim before falling back to the
// normalized display name, so ordinary words like "pay" never hit a ticker.
func (idx index) lookup(name string) (Entry, bool) {
	if entry, ok := idx.tickers[strings.TrimSpace(name)]; ok {
		return entry, true
	}
	key := Normalize(name)
	if key == "" {
		return Entry{}, false
	}
	entry, ok := idx.names[key]
	return entry, ok
}

func mustIndex(entries []Entry) index {
	idx := index{
		names:   make(map[string]Entry, len(entries)),
		tickers: make(map[string]Entry, len(entries)),
	}
	for _, entry := range entries {
		key := entry.Key()
		if key == "" || strings.TrimSpace(entry.Asset) == "" {
			panic(fmt.Sprintf("icons: invalid catalog entry %q", entry.Name))
		}
		if previous, ok := idx.names[key]; ok {
			panic(fmt.Sprintf("icons: %q duplicates key %q owned by %q", entry.Name, key, previous.Name))
		}
		idx.names[key] = entry
	}
	for _, entry := range entries {
		if entry.Ticker == "" {
			continue
		}
		if entry.Ticker != strings.ToUpper(strings.TrimSpace(entry.Ticker)) {
			panic(fmt.Sprintf("icons: ticker %q of %q is not upper case", entry.Ticker, entry.Name))
		}
		if previous, ok := idx.tickers[entry.Ticker]; ok {
			panic(fmt.Sprintf("icons: ticker %q of %q collides with %q", entry.Ticker, entry.Name, previous.Name))
		}
		idx.tickers[entry.Ticker] = entry
	}
	return idx
}

// Catalog returns a copy of the project icon table sorted by display name.
func Catalog() []Entry {
	result := make([]Entry, len(catalog))
	copy(result, catalog)
	sort.SliceStable(result, func(i, j int) bool {
		return strings.ToLower(result[i].Name) < strings.ToLower(result[j].Name)
	})
	return result
}

// Names returns the display names of every known project.
func Names() []string {
	entries := Catalog()
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name)
	}
	return names
}

// CatalogMarkdown renders the project icon table as markdown.
func CatalogMarkdown() string {
	var builder strings.Builder
	builder.WriteString("# Project Icon Catalog\n\n")
	builder.WriteString("| Project | Ticker | Key | Asset |\n")
	builder.WriteString("| --- | --- | --- | --- |\n")
	for _, entry := range Catalog() {
		builder.WriteString("| ")
		builder.WriteString(entry.Name)
		builder.WriteString(" | ")
		builder.WriteString(entry.Ticker)
		builder.WriteString(" | ")
		builder.WriteString(entry.Key())
		builder.WriteString(" | ")
		builder.WriteString(entry.Asset)
		builder.WriteString(" |\n")
	}
	return builder.String()
}
