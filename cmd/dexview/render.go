package main

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"dexview/internal/catalog"
	"dexview/internal/theme"
)

const (
	maxStat  = 255
	barWidth = 20
)

func renderCard(styles theme.Styles, entity catalog.Entity, favorite bool) string {
	marker := "  "
	if favorite {
		marker = styles.Favorite.Render("★") + " "
	}

	badges := make([]string, 0, len(entity.Tags))
	for _, tag := range entity.Tags {
		badges = append(badges, styles.Tag(tag))
	}

	return fmt.Sprintf("%s%s %s %s",
		marker,
		styles.Muted.Render(fmt.Sprintf("#%03d", entity.ID)),
		styles.Name.Render(displayName(entity.Name)),
		strings.Join(badges, " "),
	)
}

func renderPager(styles theme.Styles, current, total int) string {
	window := catalog.PageWindow(current, total)
	if len(window) == 0 {
		return ""
	}

	parts := make([]string, 0, len(window))
	for _, page := range window {
		switch page {
		case catalog.Ellipsis:
			parts = append(parts, styles.Muted.Render("…"))
		case current:
			parts = append(parts, styles.CurrentPage.Render(strconv.Itoa(page)))
		default:
			parts = append(parts, styles.Page.Render(strconv.Itoa(page)))
		}
	}
	return strings.Join(parts, " ")
}

func renderDetail(styles theme.Styles, entity catalog.Entity, favorite bool) string {
	var b strings.Builder

	title := fmt.Sprintf("#%03d %s", entity.ID, displayName(entity.Name))
	if favorite {
		title += " " + styles.Favorite.Render("★")
	}
	b.WriteString(styles.Title.Render(title))
	b.WriteString("\n\n")

	badges := make([]string, 0, len(entity.Tags))
	for _, tag := range entity.Tags {
		badges = append(badges, styles.Tag(tag))
	}
	fmt.Fprintf(&b, "%s %s\n", styles.Heading.Render("Types:"), strings.Join(badges, " "))
	fmt.Fprintf(&b, "%s %s\n", styles.Heading.Render("Height:"), formatTenths(entity.Height, "m"))
	fmt.Fprintf(&b, "%s %s\n", styles.Heading.Render("Weight:"), formatTenths(entity.Weight, "kg"))

	if len(entity.Abilities) > 0 {
		abilities := make([]string, 0, len(entity.Abilities))
		for _, ability := range entity.Abilities {
			abilities = append(abilities, displayName(ability))
		}
		fmt.Fprintf(&b, "%s %s\n", styles.Heading.Render("Abilities:"), strings.Join(abilities, ", "))
	}

	if len(entity.Stats) > 0 {
		b.WriteString("\n")
		b.WriteString(styles.Heading.Render("Base stats"))
		b.WriteString("\n")
		for _, stat := range entity.Stats {
			fmt.Fprintf(&b, "  %-16s %3d %s\n",
				displayName(stat.Name),
				stat.Base,
				styles.Bar.Render(statBar(stat.Base)),
			)
		}
	}

	if entity.Artwork != "" {
		fmt.Fprintf(&b, "\n%s\n", styles.Muted.Render(entity.Artwork))
	}
	return strings.TrimRight(b.String(), "\n")
}

// statBar draws base out of maxStat as a fixed-width bar.
func statBar(base int) string {
	base = min(max(base, 0), maxStat)
	filled := base * barWidth / maxStat
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}

// formatTenths renders a value reported in tenths of unit, e.g. 69 -> "6.9 kg".
func formatTenths(v int, unit string) string {
	return fmt.Sprintf("%d.%d %s", v/10, v%10, unit)
}

// displayName turns "mr-mime" into "Mr Mime".
func displayName(name string) string {
	title := cases.Title(language.English)
	words := strings.FieldsFunc(name, func(r rune) bool { return r == '-' || r == ' ' })
	for i, word := range words {
		words[i] = title.String(word)
	}
	return strings.Join(words, " ")
}
