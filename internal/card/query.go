package card

import "strings"

const summaryColumns = `c.id, c.card_number, c.name,
	ct.name AS card_type, r.name AS rarity,
	c1.name AS color_one, c2.name AS color_two, c3.name AS color_three,
	c.image_url, c.cost,
	s.name AS stage, a.name AS attribute,
	t1.name AS type_one, t2.name AS type_two,
	bt.abbreviation AS bt_abbreviation, c.alternative`

const detailColumns = summaryColumns + `,
	c.dp, c.evolution_cost_one, c.evolution_cost_two,
	c.effect, c.evolution_effect, c.security_effect`

const refColumns = `c.id, c.card_number, c.name, c.card_type_id, c.rarity_id,
	c.color_one_id, c.color_two_id, c.color_three_id, c.image_url, c.cost,
	c.stage_id, c.attribute_id, c.type_one_id, c.type_two_id, c.bt_id, c.alternative`

// dimensionJoins resolves every foreign key of the card aliased as c.
// LEFT joins keep cards whose keys are null.
const dimensionJoins = `
	LEFT JOIN CardTypes ct ON ct.id = c.card_type_id
	LEFT JOIN Rarities r ON r.id = c.rarity_id
	LEFT JOIN Colors c1 ON c1.id = c.color_one_id
	LEFT JOIN Colors c2 ON c2.id = c.color_two_id
	LEFT JOIN Colors c3 ON c3.id = c.color_three_id
	LEFT JOIN Stages s ON s.id = c.stage_id
	LEFT JOIN Attributes a ON a.id = c.attribute_id
	LEFT JOIN Types t1 ON t1.id = c.type_one_id
	LEFT JOIN Types t2 ON t2.id = c.type_two_id
	LEFT JOIN BTs bt ON bt.id = c.bt_id`

const nameOrder = ` ORDER BY LOWER(c.name), c.card_number`

// listQuery assembles one of the fixed list statements. Only the
// column set, the alternative filter and the paging clause vary.
func listQuery(columns string, joins bool, opts ListOptions) string {
	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(columns)
	b.WriteString(" FROM Cards c")
	if joins {
		b.WriteString(dimensionJoins)
	}
	if !opts.IncludeAlternative {
		b.WriteString(" WHERE c.alternative = 0")
	}
	b.WriteString(nameOrder)
	if opts.paged() {
		b.WriteString(" LIMIT ? OFFSET ?")
	}
	return b.String()
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// escapeLike makes s match literally inside a LIKE ... ESCAPE '!' pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
