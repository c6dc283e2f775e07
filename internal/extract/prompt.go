package extract

// FieldKeys are the sixteen output keys the model is instructed to produce.
var FieldKeys = []string{
	"Property Type",
	"Price",
	"Address",
	"Area",
	"Ownership",
	"Shared Ownership",
	"Land Category",
	"Road Info",
	"Coverage & Floor-to-Area Ratio",
	"Zoning",
	"Utilities",
	"Status",
	"Transportation",
	"Construction Date",
	"Floor Plan & Structure",
	"Parking",
}

// Prompt is the fixed instruction block sent with every request. It enumerates
// the target fields with their Japanese cue terms and translation rules, and
// forbids any non-JSON text around the reply.
const Prompt = `
You are a real estate data extraction expert. I will provide you with the text content of a Japanese real estate PDF document. Your task is to extract specific real estate information and format it as a single JSON object.

The output JSON MUST have the following keys in English. The extracted values should also be translated into English. If a value is not present in the document or a direct translation is not possible (e.g., a specific address), use null.

- **Property Type:** Look for '戸建て', 'マンション', '土地', '1棟マンション', 'アパート'. Translate the found value to English (e.g., '戸建て' -> 'Detached House').
- **Price:** Look for '価格', '値段', '販売価格'.
- **Address:** Look for '所在', '所在地', '住所'.
- **Area:** Look for '面積', '土地面積', '延床面積', '延床', '敷地面積', '建物面積'.
- **Ownership:** Look for '所有権', '借地権', '敷地権'. Translate to English (e.g., '所有権' -> 'Freehold').
- **Shared Ownership:** Look for '持ち分', '共有持分'.
- **Land Category:** Look for '地目', '宅地', '山林'. Translate to English.
- **Road Info:** Look for '道路', '幅員', '長さ', '接道'.
- **Coverage & Floor-to-Area Ratio:** Look for '建ぺい率', '容積率'.
- **Zoning:** Look for '用途地域'. Translate to English.
- **Utilities:** Look for '水道', '下水', 'ガス', '都市ガス', '電気'. Translate to English.
- **Status:** Look for '現況', '居住中', '空き家', '空室'. Translate to English (e.g., '居住中' -> 'Occupied').
- **Transportation:** Look for '駅', '徒歩', '分', '沿線', '交通'.
- **Construction Date:** Look for '築年月', '建築年月', '増改築'.
- **Floor Plan & Structure:** Look for '間取り', '構造', '鉄筋コンクリート', '鉄筋鉄骨コンクリート', '鉄骨', '重量鉄骨', '軽量鉄骨', '木造'. Translate to English (e.g., '木造' -> 'Wooden').
- **Parking:** Look for '車庫', '駐車場'. Translate to English.

The output MUST be a valid JSON object. Do not include any text before or after the JSON.
`

// BuildPrompt assembles the full payload: instruction block, separator,
// then the extracted document text.
func BuildPrompt(documentText string) string {
	return Prompt + "\n\nDocument Text:\n" + documentText
}
