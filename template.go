package main

import "html/template"

var page = template.Must(template.New("index").Parse(`
<!doctype html>
<html>
<head>
  <meta charset="utf-8">
  <title>PDF Binder</title>
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <style>
    :root { --border:#eee; --muted:#666; }
    * { box-sizing:border-box; }
    body { font-family: system-ui, -apple-system, Segoe UI, Roboto, sans-serif; margin: 24px; }
    h1 { margin:0 0 16px 0; font-size:22px; }
    .wrap { display:grid; grid-template-columns: 1.2fr 380px; gap:24px; }
    .box { border:1px solid var(--border); border-radius:12px; padding:14px; }
    .side { position:sticky; top:20px; height:fit-content; }
    .btn { padding:10px 14px; border:0; background:#111; color:#fff; border-radius:10px; cursor:pointer; }
    .btn:disabled { opacity:.5; cursor:not-allowed; }
    .muted { color:var(--muted); font-size:12px; }
    .small { font-size:12px; }
    input[type="text"] { padding:10px; border:1px solid #ddd; border-radius:8px; width:100%; }
    input[type="file"] { margin:8px 0; }
    textarea { width:100%; min-height:80px; padding:10px; border:1px solid #ddd; border-radius:8px; font:inherit; }
    ol { margin:8px 0 0 0; padding-left:22px; }
    ol li { padding:4px 0; border-bottom:1px solid var(--border); }
    .badge { background:#f5f5f5; border:1px solid #e9e9e9; border-radius:999px; padding:2px 8px; font-size:11px; color:#444; }
    code { background:#f6f6f6; padding:2px 6px; border-radius:6px; }
    @media (max-width: 980px) {
      .wrap { grid-template-columns: 1fr; }
      .side { position: static; }
    }
  </style>
</head>
<body>
  <h1>PDF Binder</h1>
  <p class="muted">
    Merges PDFs in the order of the number at the end of each filename
    (e.g. <code>document (8).pdf</code> &rarr; 8, <code>scan 3.pdf</code> &rarr; 3).
    Files without a number go first, keeping their upload order.
  </p>

  <div class="wrap">
    <form id="mergeForm" class="box" method="post" action="/merge" enctype="multipart/form-data">
      <h3>Input</h3>
      <input id="files" name="files" type="file" accept="application/pdf,.pdf" multiple>
      <div class="muted">Max {{.MaxUploadMB}} MB per request.</div>

      <h3>PDF URLs (optional)</h3>
      <textarea name="urls" placeholder="https://example.com/doc (1).pdf&#10;one per line, appended after the uploads"></textarea>

      <h3>Output filename</h3>
      <input name="out" type="text" placeholder="merged">

      <div style="margin-top:14px;">
        <button id="mergeBtn" class="btn" type="submit">Merge &amp; download</button>
        <span id="count" class="badge"></span>
      </div>
    </form>

    <div class="side box">
      <h3>Merge order</h3>
      <div class="muted">Resolved from the filenames you picked.</div>
      <ol id="orderList"></ol>
    </div>
  </div>

<script>
  const filesInput = document.getElementById('files');
  const orderList  = document.getElementById('orderList');
  const countBadge = document.getElementById('count');

  async function refreshOrder() {
    const names = Array.from(filesInput.files).map(f => f.name);
    countBadge.textContent = names.length ? names.length + ' files' : '';
    orderList.innerHTML = '';
    if (!names.length) return;
    try {
      const resp = await fetch('/order', {
        method: 'POST',
        headers: {'Content-Type':'application/json'},
        body: JSON.stringify({ files: names })
      });
      const data = await resp.json();
      (data.order || []).forEach(name => {
        const li = document.createElement('li');
        li.textContent = name;
        orderList.appendChild(li);
      });
    } catch (e) {
      orderList.innerHTML = '<li>' + e + '</li>';
    }
  }

  filesInput.addEventListener('change', refreshOrder);
</script>
</body>
</html>
`))
