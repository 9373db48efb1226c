/*Package pdbio loads an AtomSet from the ATOM/HETATM records of a PDB
file. It handles only the single-model subset of the format needed to
build an atom set for SASA; it is not a general PDB/mmCIF toolkit.
*/
package pdbio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/phil-mansfield/sasa/lib/classify"
	"github.com/phil-mansfield/sasa/lib/result"
	"github.com/phil-mansfield/sasa/lib/sasaerr"
)

// Config controls loader behavior.
type Config struct {
	// IncludeHetatm, if true, loads HETATM records in addition to ATOM
	// records. Waters (residue name HOH) are only loaded if this is set.
	IncludeHetatm bool
	// IncludeHydrogens, if true, keeps hydrogen atoms (element H). Most
	// SASA calculations on X-ray structures, which rarely resolve
	// hydrogens, want this false.
	IncludeHydrogens bool
	// FallbackRadius is used for atoms the classifier does not recognize.
	FallbackRadius float64
}

// DefaultConfig skips HETATM and hydrogen records and falls back to
// classify.DefaultRadius for unrecognized atoms.
var DefaultConfig = Config{
	IncludeHetatm:    false,
	IncludeHydrogens: false,
	FallbackRadius:   classify.DefaultRadius,
}

// AtomSet mirrors the root package's AtomSet, plus the structure's Name;
// callers pass its fields directly into sasa.AtomSet.
type AtomSet struct {
	X, Y, Z []float64
	R       []float64
	Class   []classify.Class
	Residue []result.ResidueID
	Name    string // from the PDB header's COMPND line, if present
}

// Len returns the number of atoms loaded.
func (s *AtomSet) Len() int { return len(s.X) }

// Warning is a non-fatal diagnostic emitted while loading, such as a
// skipped alternate conformation.
type Warning struct {
	Line int
	Msg  string
}

func (w Warning) String() string { return fmt.Sprintf("line %d: %s", w.Line, w.Msg) }

type atomKey struct {
	chain         string
	seqNum        int
	insertionCode byte
	atomName      string
}

// Load opens path and parses it with DefaultConfig.
func Load(path string) (*AtomSet, []Warning, error) {
	return LoadConfig(path, DefaultConfig)
}

// LoadConfig opens path and parses it with the given Config.
func LoadConfig(path string, cfg Config) (*AtomSet, []Warning, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, sasaerr.New(sasaerr.InvalidInput, "cannot open %s: %v", path, err)
	}
	defer f.Close()
	return Parse(f, cfg)
}

// Parse reads PDB records from r, applying the "first alternate conformer
// seen wins" rule: the first record for a given atom identity (chain,
// residue sequence number, insertion code, atom name) is kept, whatever its
// alt-loc, and later records for that same atom are skipped. A skipped
// record whose non-blank alt-loc differs from the kept one adds a Warning
// rather than an error.
func Parse(r io.Reader, cfg Config) (*AtomSet, []Warning, error) {
	set := &AtomSet{}
	var warnings []Warning
	seen := make(map[atomKey]byte) // atom identity -> alt-loc already kept

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 256), 1<<16)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if len(line) < 6 {
			continue
		}
		record := strings.TrimRight(line[0:6], " ")

		switch record {
		case "COMPND":
			if set.Name == "" && len(line) > 10 {
				set.Name = strings.TrimSpace(line[10:])
			}
			continue
		case "ATOM":
		case "HETATM":
			if !cfg.IncludeHetatm {
				continue
			}
		default:
			continue
		}

		if len(line) < 54 {
			return nil, warnings, sasaerr.New(
				sasaerr.InvalidInput, "line %d: record too short to contain coordinates", lineNo,
			)
		}

		atomName := strings.TrimSpace(line[12:16])
		altLoc := byte(' ')
		if len(strings.TrimSpace(line[16:17])) > 0 {
			altLoc = line[16]
		}
		residueName := strings.TrimSpace(line[17:20])
		chain := strings.TrimSpace(line[21:22])
		seqNum, err := strconv.Atoi(strings.TrimSpace(line[22:26]))
		if err != nil {
			return nil, warnings, sasaerr.New(
				sasaerr.InvalidInput, "line %d: unparseable residue sequence number", lineNo,
			)
		}
		insertionCode := byte(' ')
		if len(strings.TrimSpace(line[26:27])) > 0 {
			insertionCode = line[26]
		}

		element := ""
		if len(line) >= 78 {
			element = strings.TrimSpace(line[76:78])
		}
		if element == "" {
			element = guessElement(atomName)
		}
		if !cfg.IncludeHydrogens && element == "H" {
			continue
		}

		key := atomKey{chain, seqNum, insertionCode, atomName}
		if prev, ok := seen[key]; ok {
			if altLoc != ' ' && altLoc != prev {
				warnings = append(warnings, Warning{
					lineNo,
					fmt.Sprintf("skipping alternate conformation %q of atom %s %s%d%c (keeping %q)",
						string(altLoc), atomName, chain, seqNum, insertionCode, string(prev)),
				})
			}
			continue
		}
		seen[key] = altLoc

		x, errX := strconv.ParseFloat(strings.TrimSpace(line[30:38]), 64)
		y, errY := strconv.ParseFloat(strings.TrimSpace(line[38:46]), 64)
		z, errZ := strconv.ParseFloat(strings.TrimSpace(line[46:54]), 64)
		if errX != nil || errY != nil || errZ != nil {
			return nil, warnings, sasaerr.New(
				sasaerr.InvalidInput, "line %d: unparseable coordinates", lineNo,
			)
		}

		class, radius := classify.Classify(element, residueName, atomName)
		if class == classify.Unknown {
			radius = cfg.FallbackRadius
		}

		set.X = append(set.X, x)
		set.Y = append(set.Y, y)
		set.Z = append(set.Z, z)
		set.R = append(set.R, radius)
		set.Class = append(set.Class, class)
		set.Residue = append(set.Residue, result.ResidueID{
			Chain: chain, SeqNum: seqNum, InsertionCode: insertionCode,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, warnings, sasaerr.New(sasaerr.InvalidInput, "read error: %v", err)
	}
	if len(set.X) == 0 {
		return nil, warnings, sasaerr.New(sasaerr.InvalidInput, "no ATOM/HETATM records found")
	}

	return set, warnings, nil
}

// guessElement recovers an element symbol from the atom name when the PDB
// record's dedicated element column (77-78) is blank, as is common in
// older files. It takes the first alphabetic character, which is correct
// for every standard protein atom name.
func guessElement(atomName string) string {
	for _, c := range atomName {
		if (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') {
			return strings.ToUpper(string(c))
		}
	}
	return ""
}
