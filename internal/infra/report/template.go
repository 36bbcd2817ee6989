package report

// reportTemplate is the standalone report page. Chart containers are
// rendered per chart id; the inline script passes the embedded specs to
// echarts.js loaded from CDN (plotly specs render as-is if the frontend
// swaps the library).
const reportTemplate = `<!DOCTYPE html>
<html lang="zh-CN">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script src="https://cdn.jsdelivr.net/npm/echarts@5/dist/echarts.min.js"></script>
<style>
body { font-family: "Helvetica Neue", Arial, sans-serif; color: #333; margin: 24px; background: #f5f7fa; }
h1 { font-size: 22px; color: #1890ff; }
.meta { color: #888; font-size: 13px; margin-bottom: 20px; }
.cards { display: flex; flex-wrap: wrap; gap: 12px; margin-bottom: 24px; }
.card { background: #fff; border: 1px solid #e8e8e8; border-radius: 6px; padding: 14px 20px; min-width: 140px; }
.card .num { font-size: 24px; font-weight: 600; color: #1890ff; }
.card .label { font-size: 12px; color: #888; }
.chart { background: #fff; border: 1px solid #e8e8e8; border-radius: 6px; height: 360px; margin-bottom: 16px; }
table { border-collapse: collapse; width: 100%; background: #fff; }
th, td { border: 1px solid #e8e8e8; padding: 8px 12px; font-size: 13px; text-align: left; }
th { background: #fafafa; }
img.thumb { max-height: 48px; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<div class="meta">站点: {{.Site}} ｜ 产品ID: {{.ProductID}} ｜ 下载时间: {{.Download}} ｜ 生成时间: {{.GeneratedAt}}</div>

<div class="cards">
  <div class="card"><div class="num">{{.Rating.TotalReviews}}</div><div class="label">总评论数</div></div>
  <div class="card"><div class="num">{{.Rating.ValidReviews}}</div><div class="label">有效评论数 ({{.Rating.ValidReviewsRatio}}%)</div></div>
  <div class="card"><div class="num">{{.Rating.AverageRating}}</div><div class="label">平均星级</div></div>
  <div class="card"><div class="num">{{.Rating.PositiveRate}}%</div><div class="label">好评率</div></div>
  <div class="card"><div class="num">{{.Media.WithMediaRatio}}%</div><div class="label">带媒体评论占比</div></div>
</div>

{{range .ChartIDs}}<div id="{{.}}" class="chart"></div>
{{end}}

<h2>变体明细</h2>
<table>
<tr><th>变体</th><th>评论数</th><th>平均星级</th><th>价格</th><th>图片</th></tr>
{{range .Variants}}<tr>
  <td>{{.Name}}</td><td>{{.Count}}</td><td>{{.Rating}}</td><td>{{.Price}}</td>
  <td>{{if .ImageURL}}<img class="thumb" src="{{.ImageURL}}">{{end}}</td>
</tr>
{{end}}</table>

<script>
var CHARTS = {{.ChartsJSON}};
Object.keys(CHARTS).forEach(function (id) {
  var el = document.getElementById(id);
  if (!el || !window.echarts) { return; }
  var spec = CHARTS[id];
  if (spec.data && spec.layout) { return; } // plotly figure, needs plotly.js
  echarts.init(el).setOption(spec);
});
</script>
</body>
</html>
`
