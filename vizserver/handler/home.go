package handler

import (
	"net/http"
	"strconv"

	"github.com/ballarena/ballarena/vizserver/types"
)

// Home serves the whole viz client inline; no asset pipeline is needed for a
// canvas and a handful of key bindings.
func Home(vizgame *types.VizGame) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(homePage))
		w.Write([]byte("<!-- " + strconv.Itoa(vizgame.GetNumberWatchers()) + " watchers right now -->"))
	}
}

const homePage = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Ball Arena</title>
<style>body{background:#111;color:#eee;font-family:monospace} canvas{border:1px solid #444;background:#181818}</style>
</head>
<body>
<h2>Ball Arena</h2>
<p>arrows/WASD: move &mdash; space: grab/drop</p>
<canvas id="viz" width="800" height="600"></canvas>
<script>
var canvas = document.getElementById("viz");
var ctx = canvas.getContext("2d");
var bounds = null;
var scale = 1, offx = 0, offy = 0;

var ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "/ws");

ws.onmessage = function(ev) {
	var msg = JSON.parse(ev.data);
	if (msg.type === "init") {
		bounds = msg.data.bounds;
		scale = Math.min(canvas.width / (bounds.maxx - bounds.minx), canvas.height / (bounds.maxy - bounds.miny));
		offx = -bounds.minx; offy = -bounds.miny;
	} else if (msg.type === "frame" && bounds) {
		draw(msg.data);
	}
};

function draw(frame) {
	ctx.clearRect(0, 0, canvas.width, canvas.height);
	frame.Objects.forEach(function(obj) {
		var x = (obj.Position[0] + offx) * scale;
		var y = (obj.Position[1] + offy) * scale;
		var r = Math.max(obj.Radius * scale, 3);
		ctx.beginPath();
		if (obj.Type === "robot") {
			ctx.fillStyle = "#4af";
			ctx.fillRect(x - r, y - r, 2 * r, 2 * r);
		} else {
			ctx.fillStyle = obj.Color || "#fa4";
			ctx.arc(x, y, r, 0, 2 * Math.PI);
			ctx.fill();
			if (obj.Carried) {
				ctx.strokeStyle = "#fff";
				ctx.stroke();
			}
		}
	});
}

var keydirs = {
	"ArrowUp": [0, -1], "KeyW": [0, -1],
	"ArrowDown": [0, 1], "KeyS": [0, 1],
	"ArrowLeft": [-1, 0], "KeyA": [-1, 0],
	"ArrowRight": [1, 0], "KeyD": [1, 0]
};
var pressed = {};

function currentDirection() {
	var dx = 0, dy = 0;
	for (var code in pressed) {
		if (pressed[code]) { dx += keydirs[code][0]; dy += keydirs[code][1]; }
	}
	return [dx, dy];
}

document.addEventListener("keydown", function(ev) {
	if (ev.code === "Space") {
		ws.send(JSON.stringify({method: "grab", arguments: []}));
		ev.preventDefault();
		return;
	}
	if (!(ev.code in keydirs) || pressed[ev.code]) return;
	pressed[ev.code] = true;
	ws.send(JSON.stringify({method: "move", arguments: currentDirection()}));
	ev.preventDefault();
});

document.addEventListener("keyup", function(ev) {
	if (!(ev.code in keydirs)) return;
	pressed[ev.code] = false;
	ws.send(JSON.stringify({method: "stopmove", arguments: keydirs[ev.code]}));
	ws.send(JSON.stringify({method: "move", arguments: currentDirection()}));
	ev.preventDefault();
});
</script>
</body>
</html>`
