package scan

// Error messages
const (
	ErrMsgNoJSONObject     = "model output has no JSON object"
	ErrMsgMalformedJSON    = "model output is not valid JSON"
	ErrMsgRejectedScreen   = "screen is not an account level bar"
	ErrMsgLevelOutOfRange  = "level out of range:"
	ErrMsgEmptyImage       = "image is empty"
	ErrMsgUnsupportedImage = "unsupported image type"
	ErrMsgModelFailed      = "model request failed"
)

// MaxImageBytes is the largest screenshot accepted for a scan
const MaxImageBytes = 4 << 20

// SupportedMIMETypes lists the image formats a scan accepts
var SupportedMIMETypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// Prompt instructs the vision model to validate the screenshot and return
// the level bar contents as bare JSON.
const Prompt = `You are validating a Blue Archive game UI screenshot.

Step 1: Check that the image contains the account level bar: a blue slanted
rectangle with "Lv" and a number beneath it, the player nickname beside it,
an EXP progress bar and the current and target EXP (for example 99/999).

Step 2:
- If the image is not valid, is blurred, or the level cannot be read, return:
  {"valid": false, "error": "Screen does not match or data is unreadable"}
- If the image is valid, extract the level and EXP and return:
  {"valid": true, "lv": <integer>, "exp_current": <integer or "MAX">, "exp_max": <integer or "MAX">}

Return RAW JSON only, without markdown.`
