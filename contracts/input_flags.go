package contracts

// InputFlags is the canonical options record. Short and long aliases of a flag
// fold into the same field when the command line is parsed.
type InputFlags struct {
	Dir         string
	Output      string
	PageSize    string
	Help        bool
	Quiet       bool
	Reverse     bool
	Force       bool
	Decline     bool
	Interactive bool
	Except      bool
	Selective   bool

	// PageSizeSet reports whether -p/--page-size was given explicitly.
	PageSizeSet bool
}
