package theme

// DefaultName is the palette prefix used by the stock theme.
const DefaultName = "xgrid"

// Default returns the stock XGrid theme. Each call returns fresh maps so
// callers may overlay values without affecting other themes.
func Default() *Theme {
	return &Theme{
		Name: DefaultName,
		Colors: Palette{
			Black: "#000000",
			White: "#FFFFFF",
			Gray: GrayScale{
				Light:  "#F5F5F5",
				Medium: "#E0E0E0",
				Dark:   "#666666",
			},
			Blue:  "#0066CC",
			Green: "#28A745",
			Red:   "#DC3545",
		},
		FontFamily: []string{"-apple-system", "BlinkMacSystemFont", "Segoe UI", "Roboto", "sans-serif"},
		FontSize: map[string]string{
			"xs":   "14px",
			"sm":   "14px",
			"base": "16px",
			"lg":   "18px",
			"xl":   "20px",
			"2xl":  "24px",
			"3xl":  "32px",
		},
		FontWeight: map[string]int{
			"normal":   400,
			"semibold": 600,
		},
		BorderRadius: map[string]string{
			"xgrid": "4px",
		},
		BoxShadow: map[string]string{
			"xgrid":       "0 2px 4px rgba(0,0,0,0.1)",
			"xgrid-hover": "0 4px 8px rgba(0,0,0,0.15)",
		},
		Spacing: map[string]string{
			"xgrid": "8px",
		},
	}
}
