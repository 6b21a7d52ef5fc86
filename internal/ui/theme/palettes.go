package theme

// Tokyo Night (moon / day variants).
var TokyoNight = Theme{
	Name:                "tokyonight",
	Primary:             adaptive("#2e7de9", "#82aaff"),
	Secondary:           adaptive("#9854f1", "#c099ff"),
	Accent:              adaptive("#8c6c3e", "#ffc777"),
	Error:               adaptive("#f52a65", "#ff757f"),
	Warning:             adaptive("#b15c00", "#ff966c"),
	Success:             adaptive("#587539", "#c3e88d"),
	Text:                adaptive("#3760bf", "#c8d3f5"),
	TextMuted:           adaptive("#848cb5", "#636da6"),
	TextEmphasized:      adaptive("#1f2335", "#ffffff"),
	Background:          adaptive("#e1e2e7", "#222436"),
	BackgroundSecondary: adaptive("#c8c9ce", "#2f334d"),
	BackgroundDarker:    adaptive("#d5d6db", "#1e2030"),
	BorderNormal:        adaptive("#a8aecb", "#3b4261"),
	BorderFocused:       adaptive("#2e7de9", "#82aaff"),
}

// Dracula, https://draculatheme.com.
var Dracula = Theme{
	Name:                "dracula",
	Primary:             adaptive("#7e57c2", "#bd93f9"),
	Secondary:           adaptive("#0097a7", "#8be9fd"),
	Accent:              adaptive("#f9a825", "#f1fa8c"),
	Error:               adaptive("#d32f2f", "#ff5555"),
	Warning:             adaptive("#ef6c00", "#ffb86c"),
	Success:             adaptive("#388e3c", "#50fa7b"),
	Text:                adaptive("#212121", "#f8f8f2"),
	TextMuted:           adaptive("#757575", "#6272a4"),
	TextEmphasized:      adaptive("#000000", "#ffffff"),
	Background:          adaptive("#ffffff", "#282a36"),
	BackgroundSecondary: adaptive("#e0e0e0", "#44475a"),
	BackgroundDarker:    adaptive("#bdbdbd", "#1e1f29"),
	BorderNormal:        adaptive("#bdbdbd", "#6272a4"),
	BorderFocused:       adaptive("#7e57c2", "#bd93f9"),
}

// Nord, https://www.nordtheme.com.
var Nord = Theme{
	Name:                "nord",
	Primary:             adaptive("#5E81AC", "#88C0D0"),
	Secondary:           adaptive("#81A1C1", "#81A1C1"),
	Accent:              adaptive("#D08770", "#EBCB8B"),
	Error:               adaptive("#BF616A", "#BF616A"),
	Warning:             adaptive("#D08770", "#D08770"),
	Success:             adaptive("#A3BE8C", "#A3BE8C"),
	Text:                adaptive("#2E3440", "#ECEFF4"),
	TextMuted:           adaptive("#3B4252", "#8B95A7"),
	TextEmphasized:      adaptive("#000000", "#ECEFF4"),
	Background:          adaptive("#ECEFF4", "#2E3440"),
	BackgroundSecondary: adaptive("#E5E9F0", "#3B4252"),
	BackgroundDarker:    adaptive("#D8DEE9", "#434C5E"),
	BorderNormal:        adaptive("#4C566A", "#434C5E"),
	BorderFocused:       adaptive("#5E81AC", "#88C0D0"),
}

// Gruvbox (hard contrast).
var Gruvbox = Theme{
	Name:                "gruvbox",
	Primary:             adaptive("#076678", "#83a598"),
	Secondary:           adaptive("#8f3f71", "#d3869b"),
	Accent:              adaptive("#b57614", "#fabd2f"),
	Error:               adaptive("#9d0006", "#fb4934"),
	Warning:             adaptive("#af3a03", "#fe8019"),
	Success:             adaptive("#79740e", "#b8bb26"),
	Text:                adaptive("#3c3836", "#ebdbb2"),
	TextMuted:           adaptive("#7c6f64", "#928374"),
	TextEmphasized:      adaptive("#282828", "#fbf1c7"),
	Background:          adaptive("#f9f5d7", "#1d2021"),
	BackgroundSecondary: adaptive("#ebdbb2", "#3c3836"),
	BackgroundDarker:    adaptive("#d5c4a1", "#32302f"),
	BorderNormal:        adaptive("#bdae93", "#504945"),
	BorderFocused:       adaptive("#076678", "#83a598"),
}

func init() {
	Register(TokyoNight)
	Register(Dracula)
	Register(Gruvbox)
	Register(Nord)
}
