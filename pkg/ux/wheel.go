// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package ux

import (
	"fmt"
	"strings"

	"github.com/AleutianAI/camelot/services/harmony/camelot"
	"github.com/AleutianAI/camelot/services/harmony/graph"
)

// cellWidth fits the widest key ("12A") plus brackets.
const cellWidth = 5

// RenderWheel draws the wheel as two rings of twelve keys with the
// highlighted keys marked.
//
// Description:
//
//	Row A is the minor ring and row B the major ring, columns are tonics
//	1..12. Highlighted keys are bracketed and, when colors are on, drawn
//	in the highlight style. Machine mode returns only the highlighted keys,
//	space separated, in wheel order.
//
// Example:
//
//	neighbors, _ := graph.Neighbors(ctx, camelot.MustParseKey("8B"))
//	fmt.Println(ux.RenderWheel(neighbors))
func RenderWheel(highlight []camelot.Key) string {
	marked := make(map[camelot.Key]bool, len(highlight))
	for _, k := range highlight {
		marked[k] = true
	}

	if GetPersonality().Level == PersonalityMachine {
		return JoinKeys(filterKeys(camelot.StandardKeys(), marked))
	}

	var b strings.Builder
	for _, mode := range []camelot.Mode{camelot.Minor, camelot.Major} {
		b.WriteString(style(Styles.Bold).Render(mode.String()))
		b.WriteString(" ")
		for tonic := range camelot.NumTonics {
			k := camelot.NewKey(tonic, mode)
			b.WriteString(renderCell(k, marked[k]))
		}
		if mode == camelot.Minor {
			b.WriteString("\n")
		}
	}

	if GetPersonality().Level == PersonalityFull {
		fmt.Fprintf(&b, "\n%s", style(Styles.Muted).Render(
			fmt.Sprintf("%d of %d keys highlighted", len(marked), camelot.NumKeys)))
	}
	return b.String()
}

func renderCell(k camelot.Key, marked bool) string {
	if !marked {
		return style(Styles.Muted).Render(fmt.Sprintf(" %-*s", cellWidth-1, k.String()))
	}
	return style(Styles.Highlight).Render(fmt.Sprintf("%-*s", cellWidth, "["+k.String()+"]"))
}

func filterKeys(keys []camelot.Key, keep map[camelot.Key]bool) []camelot.Key {
	out := keys[:0]
	for _, k := range keys {
		if keep[k] {
			out = append(out, k)
		}
	}
	return out
}

// JoinKeys renders keys space separated, e.g. "8B 8A 9A".
func JoinKeys(keys []camelot.Key) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k.String()
	}
	return strings.Join(parts, " ")
}

// RenderPath draws a path as keys joined by labeled arrows.
//
// Full and standard modes produce "8B ─vertical→ 8A"; a step taken against
// the direction its rule was applied is labeled "vertical⁻¹". Machine
// mode returns the keys only.
func RenderPath(p graph.Path) string {
	if GetPersonality().Level == PersonalityMachine {
		return JoinKeys(p.Keys)
	}
	if len(p.Keys) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(style(Styles.Highlight).Render(p.Keys[0].String()))
	for _, s := range p.Steps {
		label := s.Transition.String()
		if s.Reversed {
			label += "⁻¹"
		}
		fmt.Fprintf(&b, " %s %s",
			style(Styles.Muted).Render("─"+label+string(IconArrow)),
			style(Styles.Highlight).Render(s.To.String()),
		)
	}
	return b.String()
}
