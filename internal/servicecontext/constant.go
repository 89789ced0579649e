package servicecontext

const (
	SummaryFileName  = "service_summary.txt"
	DocumentFileName = "about_service.pdf"

	// UnavailablePrefix starts the placeholder used when the PDF cannot be parsed.
	UnavailablePrefix = "(PDF text unavailable: "
)
