// Prestarter
// Copyright (c) 2026 The Zaparoo Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Prestarter.
//
// Prestarter is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Prestarter is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Prestarter.  If not, see <http://www.gnu.org/licenses/>.

package steam

import (
	"sort"
	"strings"

	"github.com/hbollon/go-edlib"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// MinNameSimilarity is the lowest Jaro-Winkler score FindByName reports.
const MinNameSimilarity float32 = 0.75

// Match is an app whose name is similar to a search query.
type Match struct {
	App        App
	Similarity float32
}

func normalizeName(s string) string {
	// Casers are stateful, so one per call.
	return cases.Fold().String(norm.NFKC.String(strings.TrimSpace(s)))
}

// FindByName ranks installed apps by how closely their display name
// matches query, best first. Names containing the query score 1. Apps
// without a name are never matched. A limit of zero or less returns every
// match.
func FindByName(idx Index, query string, limit int) []Match {
	q := normalizeName(query)
	if q == "" {
		return nil
	}

	var matches []Match
	for _, app := range idx {
		if app.Name == "" {
			continue
		}
		name := normalizeName(app.Name)

		var similarity float32
		if strings.Contains(name, q) {
			similarity = 1
		} else {
			similarity = edlib.JaroWinklerSimilarity(q, name)
		}

		if similarity < MinNameSimilarity {
			continue
		}
		log.Debug().
			Str("query", query).
			Str("candidate", app.Name).
			Float32("similarity", similarity).
			Msg("app name match")
		matches = append(matches, Match{App: app, Similarity: similarity})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Similarity != matches[j].Similarity {
			return matches[i].Similarity > matches[j].Similarity
		}
		return matches[i].App.ID < matches[j].App.ID
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
