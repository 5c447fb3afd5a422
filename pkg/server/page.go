package server

// indexHTML is the embedded single-page UI: input controls on the left,
// state-point table and a canvas pressure-enthalpy chart on the right.
const indexHTML = `<!doctype html>
<html lang="en"><meta charset="utf-8">
<title>vcycle</title>
<style>
body{font-family:system-ui,Segoe UI,Roboto,Helvetica,Arial,sans-serif;margin:20px;display:flex;gap:24px}
h1{font-size:18px;margin:0 0 12px}
form{min-width:260px}
label{display:block;margin:8px 0 2px;font-size:13px;color:#444}
input,select{width:100%;padding:4px 6px;box-sizing:border-box}
button{margin-top:12px;padding:6px 16px}
table{border-collapse:collapse;font-size:13px;margin-bottom:14px}
th,td{border:1px solid #ddd;padding:4px 8px;text-align:right}
th:first-child,td:first-child{text-align:left}
#err{color:#c53030;margin:8px 0;white-space:pre-wrap}
#perf{font-size:13px}
canvas{border:1px solid #eee}
</style>
<form id="f">
<h1>Refrigeration cycle calculator</h1>
<label>Refrigerant</label><select id="fluid"></select>
<label>Evaporator input</label>
<select id="evapBy"><option value="temp">temperature [°C]</option><option value="press">pressure [kPa]</option></select>
<input id="evapVal" type="number" step="any" value="-10">
<label>Condenser input</label>
<select id="condBy"><option value="temp">temperature [°C]</option><option value="press">pressure [kPa]</option></select>
<input id="condVal" type="number" step="any" value="40">
<label>Superheat [K]</label><input id="sh" type="number" step="any" value="5">
<label>Subcooling [K]</label><input id="sc" type="number" step="any" value="5">
<label>Isentropic efficiency (0..1]</label><input id="eff" type="number" step="any" value="0.8">
<label>Mass flow [kg/s] (0 = per-kg only)</label><input id="mf" type="number" step="any" value="0">
<button type="submit">Calculate</button>
<div id="err"></div>
</form>
<div>
<table id="tbl"><thead><tr><th>State</th><th>T [°C]</th><th>P [kPa]</th><th>h [kJ/kg]</th><th>s [kJ/kg·K]</th><th>x</th></tr></thead><tbody></tbody></table>
<div id="perf"></div>
<canvas id="ph" width="640" height="420"></canvas>
</div>
<script>
const ws = new WebSocket("ws://" + location.host + "/ws");
ws.onopen = () => ws.send(JSON.stringify({type: "fluids"}));
ws.onmessage = (ev) => {
  const msg = JSON.parse(ev.data);
  if (msg.type === "fluids") {
    const sel = document.getElementById("fluid");
    for (const f of msg.fluids) {
      const o = document.createElement("option");
      o.value = o.textContent = f;
      if (f === "R134a") o.selected = true;
      sel.appendChild(o);
    }
  } else if (msg.type === "result") {
    document.getElementById("err").textContent = "";
    renderTable(msg.result);
    renderPerf(msg.result);
    drawDiagram(msg.diagram);
  } else if (msg.type === "error") {
    document.getElementById("err").textContent = msg.kind + ": " + msg.error;
  }
};
document.getElementById("f").addEventListener("submit", (e) => {
  e.preventDefault();
  const v = (id) => parseFloat(document.getElementById(id).value);
  ws.send(JSON.stringify({type: "calc", calc: {
    fluid: document.getElementById("fluid").value,
    evap_by: document.getElementById("evapBy").value, evap_value: v("evapVal"),
    cond_by: document.getElementById("condBy").value, cond_value: v("condVal"),
    superheat_k: v("sh"), subcool_k: v("sc"),
    efficiency: v("eff"), mass_flow_kg_s: v("mf")
  }}));
});
function renderTable(r) {
  const tb = document.querySelector("#tbl tbody");
  tb.innerHTML = "";
  for (const p of r.points) {
    const row = tb.insertRow();
    const q = (p.quality >= 0 && p.quality <= 1) ? p.quality.toFixed(3) : "-";
    for (const c of [p.index, (p.temp_k - 273.15).toFixed(2), p.press_kpa.toFixed(1),
                     p.enthalpy_kj_kg.toFixed(2), p.entropy_kj_kgk.toFixed(4), q]) {
      row.insertCell().textContent = c;
    }
  }
}
function renderPerf(r) {
  let txt = "w = " + r.work_kj_kg.toFixed(2) + " kJ/kg, q_evap = " + r.refrig_effect_kj_kg.toFixed(2)
          + " kJ/kg, q_cond = " + r.heat_reject_kj_kg.toFixed(2) + " kJ/kg, COP = " + r.cop.toFixed(2);
  if (r.power_kw) {
    txt += " | " + r.power_kw.toFixed(2) + " kW in, " + r.capacity_kw.toFixed(2) + " kW ("
        + r.capacity_tons.toFixed(2) + " tons) cooling, " + r.kw_per_ton.toFixed(2) + " kW/ton";
  }
  document.getElementById("perf").textContent = txt;
}
function drawDiagram(d) {
  const cv = document.getElementById("ph"), ctx = cv.getContext("2d");
  ctx.clearRect(0, 0, cv.width, cv.height);
  const all = d.cycle_p.concat(d.bubble_p, d.dew_p);
  const allH = d.cycle_h.concat(d.bubble_h, d.dew_h);
  const lpMin = Math.log10(Math.min(...all)) - 0.08, lpMax = Math.log10(Math.max(...all)) + 0.08;
  const hMin = Math.min(...allH), hMax = Math.max(...allH);
  const pad = 0.05 * (hMax - hMin);
  const mx = 50, my = 28;
  const x = (h) => mx + (h - hMin + pad) / (hMax - hMin + 2 * pad) * (cv.width - mx - 12);
  const y = (p) => cv.height - my - (Math.log10(p) - lpMin) / (lpMax - lpMin) * (cv.height - my - 12);
  const line = (hs, ps, color, w) => {
    ctx.strokeStyle = color; ctx.lineWidth = w; ctx.beginPath();
    hs.forEach((h, i) => i ? ctx.lineTo(x(h), y(ps[i])) : ctx.moveTo(x(h), y(ps[i])));
    ctx.stroke();
  };
  line(d.bubble_h, d.bubble_p, "#2b6cb0", 1.5);
  line(d.dew_h, d.dew_p, "#2b6cb0", 1.5);
  line(d.cycle_h, d.cycle_p, "#c53030", 2);
  ctx.fillStyle = "#c53030"; ctx.font = "11px sans-serif";
  for (const pt of d.points) {
    ctx.beginPath(); ctx.arc(x(pt.h_kj_kg), y(pt.press_kpa), 3.5, 0, 7); ctx.fill();
    ctx.fillText(pt.name, x(pt.h_kj_kg) + 6, y(pt.press_kpa) - 6);
  }
  ctx.fillStyle = "#333";
  ctx.fillText("h [kJ/kg]", cv.width - 70, cv.height - 8);
  ctx.save(); ctx.translate(12, 70); ctx.rotate(-Math.PI / 2); ctx.fillText("log P [kPa]", 0, 0); ctx.restore();
}
</script>
</html>
`
