package server

import "net/http"

const indexPage = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>Medscribe</title>
  <style>
    body { margin: 0; font-family: system-ui, sans-serif; background: #0f172a; color: #e5e7eb; }
    .container { max-width: 720px; margin: 48px auto; padding: 0 16px; }
    .card { background: #111827; border: 1px solid #1f2937; border-radius: 14px; padding: 24px; }
    h1 { margin: 0 0 8px; }
    p { color: #9ca3af; }
    code { background: #0a1222; padding: 2px 6px; border-radius: 6px; }
    ul { line-height: 1.8; }
  </style>
</head>
<body>
  <div class="container">
    <div class="card">
      <h1>Medscribe</h1>
      <p>Medical record summarization and live transcription backend.</p>
      <ul>
        <li><code>POST /summarize</code> - upload PDFs, get a plain-language summary</li>
        <li><code>POST /upload-audio</code> - store audio/video recordings</li>
        <li><code>POST /transcribe/start</code> - begin a live transcription session</li>
      </ul>
      <p>Set <code>GEMINI_API_KEY</code> to enable AI summaries; without it a keyword draft is returned.</p>
    </div>
  </div>
</body>
</html>
`

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(indexPage))
}
