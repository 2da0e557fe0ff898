package cmd

type checkReportJSON struct {
	Passed        bool   `json:"passed"`
	Runtime       string `json:"runtime"`
	RuntimePath   string `json:"runtime_path"`
	ToolChecked   bool   `json:"tool_checked"`
	ToolAvailable bool   `json:"tool_available"`
	Error         string `json:"error,omitempty"`
}
