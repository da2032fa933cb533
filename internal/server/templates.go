package server

import "html/template"

var indexTmpl = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="de">
<head>
<meta charset="utf-8">
<title>Dadaistisches Gedicht</title>
</head>
<body>
<h1>Dadaistisches Gedicht</h1>
<p>Lade einen Screenshot hoch. Aus den Substantiven und Verben entsteht ein Gedicht.</p>
<form action="/generate" method="post" enctype="multipart/form-data">
  <input type="file" name="image" accept="image/*" required>
  <select name="lang">
    <option value="">Sprache erkennen</option>
    <option value="de">Deutsch</option>
    <option value="en">Englisch</option>
  </select>
  <button type="submit">Gedicht generieren</button>
</form>
</body>
</html>
`))

var poemTmpl = template.Must(template.New("poem").Parse(`<!DOCTYPE html>
<html lang="de">
<head>
<meta charset="utf-8">
<title>Dadaistisches Gedicht</title>
</head>
<body>
<h1>Dadaistisches Gedicht</h1>
<pre>{{range .Lines}}{{.}}
{{end}}</pre>
<p><a href="/">Noch einmal</a></p>
</body>
</html>
`))

type poemPage struct {
	Lines []string
}
