package carousel

// Semigraphics provides easy access to Unicode characters for drawing.

const (
	// General Punctuation U+2000-U+206F
	SemigraphicsHorizontalEllipsis = "…" // …

	// Latin-1 Supplement U+0080-U+00FF
	SemigraphicsLeftGuillemet  = "«" // «
	SemigraphicsRightGuillemet = "»" // »

	// Box Drawing U+2500-U+257F
	BoxDrawingsLightHorizontal      = "─" // ─
	BoxDrawingsHeavyHorizontal      = "━" // ━
	BoxDrawingsLightVertical        = "│" // │
	BoxDrawingsHeavyVertical        = "┃" // ┃
	BoxDrawingsLightDownAndRight    = "┌" // ┌
	BoxDrawingsHeavyDownAndRight    = "┏" // ┏
	BoxDrawingsLightDownAndLeft     = "┐" // ┐
	BoxDrawingsHeavyDownAndLeft     = "┓" // ┓
	BoxDrawingsLightUpAndRight      = "└" // └
	BoxDrawingsHeavyUpAndRight      = "┗" // ┗
	BoxDrawingsLightUpAndLeft       = "┘" // ┘
	BoxDrawingsHeavyUpAndLeft       = "┛" // ┛
	BoxDrawingsLightArcDownAndRight = "╭" // ╭
	BoxDrawingsLightArcDownAndLeft  = "╮" // ╮
	BoxDrawingsLightArcUpAndLeft    = "╯" // ╯
	BoxDrawingsLightArcUpAndRight   = "╰" // ╰

	// Geometric Shapes U+25A0-U+25FF
	GeometricBlackUpPointingTriangle   = "▲" // ▲
	GeometricBlackDownPointingTriangle = "▼" // ▼
	GeometricWhiteCircle               = "○" // ○
	GeometricBlackCircle               = "●" // ●

	// Block Elements U+2580-U+259F
	BlockFullBlock = "█" // █
)
