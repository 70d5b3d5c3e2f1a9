package constant

// Bot replies (the audience of this bot speaks Spanish).
const (
	MsgWelcome          = "Bienvenido a CyberGuard. Selecciona una opción:"
	MsgAskType          = "¿Qué tipo de incidente?"
	MsgAskDescription   = "Describe lo sucedido:"
	MsgAskLocation      = "¿En qué ciudad?"
	MsgAskAmount        = "¿Monto perdido?"
	MsgAskEvidence      = "Envía evidencia o 'Finalizar':"
	MsgEvidenceReceived = "Recibido. ¿Algo más?"
	MsgAskNumber        = "Número a consultar:"
	MsgNoReports        = "Sin reportes."
	MsgAdvisor          = "Un asesor te contactará."
	MsgCancelled        = "Cancelado."
	MsgSaveFailed       = "No pudimos guardar tu reporte. Envía 'Finalizar' para intentarlo de nuevo."
	MsgLookupFailed     = "No pudimos consultar el número. Intenta de nuevo."

	MsgReportSavedFmt   = "Reporte #%d guardado."
	MsgReportedTimesFmt = "Reportado %d veces"
)

// Control keywords, matched case-insensitively after trimming.
const (
	KeywordCancel   = "cancelar"
	KeywordSkip     = "omitir"
	KeywordFinalize = "finalizar"
)

// Main-menu triggers. Matched by prefix so the full button labels
// ("Reportar un incidente", ...) and bare words both work.
const (
	TriggerReport  = "reportar"
	TriggerLookup  = "consultar"
	TriggerAdvisor = "hablar"
)

// Slash commands (without the leading slash).
const (
	CommandStart  = "start"
	CommandCancel = "cancel"
)

// Suggested-reply keyboards. These are hints only; every state accepts
// free text regardless of what the buttons say.
var (
	MainMenuKeyboard = [][]string{
		{"Reportar un incidente"},
		{"Consultar número sospechoso"},
		{"Hablar con un asesor"},
	}
	TypeKeyboard     = [][]string{{"Phishing"}, {"Extorsión"}, {"Otros"}}
	CancelKeyboard   = [][]string{{"Cancelar"}}
	LocationKeyboard = [][]string{{"Omitir"}, {"Cancelar"}}
	AmountKeyboard   = [][]string{{"0"}, {"Cancelar"}}
	EvidenceKeyboard = [][]string{{"Finalizar"}, {"Cancelar"}}
)
