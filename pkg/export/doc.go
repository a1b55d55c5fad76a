package export

import "strings"

const docHeader = `<!DOCTYPE html>
<html xmlns:o='urn:schemas-microsoft-com:office:office' xmlns:w='urn:schemas-microsoft-com:office:word' xmlns='http://www.w3.org/TR/REC-html40'>
<head>
<meta charset="utf-8">
<title>%TITLE% Resume</title>
<style>
    body { font-family: 'Calibri', 'Arial', sans-serif; font-size: 11pt; line-height: 1.4; color: #333; background: white; }
    h1 { font-size: 24pt; font-weight: bold; margin-bottom: 5pt; color: #000; }
    h2 { font-size: 14pt; font-weight: bold; border-bottom: 1px solid #666; margin-top: 15pt; margin-bottom: 5pt; padding-bottom: 2pt; color: #2563eb; }
    p { margin: 0 0 4pt 0; }
    ul { margin-top: 0; margin-bottom: 8pt; padding-left: 20pt; }
    li { margin-bottom: 2pt; }
</style>
</head>
<body>
<div style="width: 100%; max-width: 800px; margin: 0 auto;">
`

const docFooter = `
</div>
</body>
</html>
`

// WordDocument wraps rendered resume markup in a minimal Word-compatible
// HTML document. It is synchronous, needs no external services, and fails
// only on empty input. The leading BOM keeps Word's charset detection
// honest.
func WordDocument(body, fullName string) ([]byte, error) {
	if strings.TrimSpace(body) == "" {
		return nil, ErrEmptyDocument
	}
	head := strings.Replace(docHeader, "%TITLE%", fullName, 1)
	return []byte("\uFEFF" + head + body + docFooter), nil
}
