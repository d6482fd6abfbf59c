// Package all registers every built-in rule with the default registry.
package all

import (
	_ "github.com/tidycss/tidycss/internal/rules/adjoiningclasses"
	_ "github.com/tidycss/tidycss/internal/rules/boxmodel"
	_ "github.com/tidycss/tidycss/internal/rules/boxsizing"
	_ "github.com/tidycss/tidycss/internal/rules/bulletprooffontface"
	_ "github.com/tidycss/tidycss/internal/rules/compatiblevendorprefixes"
	_ "github.com/tidycss/tidycss/internal/rules/displaypropertygrouping"
	_ "github.com/tidycss/tidycss/internal/rules/duplicatebackgroundimages"
	_ "github.com/tidycss/tidycss/internal/rules/duplicateproperties"
	_ "github.com/tidycss/tidycss/internal/rules/emptyrules"
	_ "github.com/tidycss/tidycss/internal/rules/errors"
	_ "github.com/tidycss/tidycss/internal/rules/fallbackcolors"
	_ "github.com/tidycss/tidycss/internal/rules/floats"
	_ "github.com/tidycss/tidycss/internal/rules/fontfaces"
	_ "github.com/tidycss/tidycss/internal/rules/fontsizes"
	_ "github.com/tidycss/tidycss/internal/rules/gradients"
	_ "github.com/tidycss/tidycss/internal/rules/ids"
	_ "github.com/tidycss/tidycss/internal/rules/important"
	_ "github.com/tidycss/tidycss/internal/rules/importrule"
	_ "github.com/tidycss/tidycss/internal/rules/knownproperties"
	_ "github.com/tidycss/tidycss/internal/rules/outlinenone"
	_ "github.com/tidycss/tidycss/internal/rules/overqualifiedelements"
	_ "github.com/tidycss/tidycss/internal/rules/qualifiedheadings"
	_ "github.com/tidycss/tidycss/internal/rules/regexselectors"
	_ "github.com/tidycss/tidycss/internal/rules/rulescount"
	_ "github.com/tidycss/tidycss/internal/rules/selectormax"
	_ "github.com/tidycss/tidycss/internal/rules/selectormaxapproaching"
	_ "github.com/tidycss/tidycss/internal/rules/shorthand"
	_ "github.com/tidycss/tidycss/internal/rules/starpropertyhack"
	_ "github.com/tidycss/tidycss/internal/rules/textindent"
	_ "github.com/tidycss/tidycss/internal/rules/underscorepropertyhack"
	_ "github.com/tidycss/tidycss/internal/rules/uniqueheadings"
	_ "github.com/tidycss/tidycss/internal/rules/universalselector"
	_ "github.com/tidycss/tidycss/internal/rules/unqualifiedattributes"
	_ "github.com/tidycss/tidycss/internal/rules/vendorprefix"
	_ "github.com/tidycss/tidycss/internal/rules/zerounits"
)
