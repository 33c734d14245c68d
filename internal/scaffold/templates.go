package scaffold

import (
	"encoding/json"
	"fmt"
)

// manifestDoc mirrors the manifest layout the Pebble SDK expects. Field
// order here is the order written to disk.
type manifestDoc struct {
	Name         string            `json:"name"`
	Author       string            `json:"author"`
	Version      string            `json:"version"`
	Keywords     []string          `json:"keywords"`
	Private      bool              `json:"private"`
	Dependencies map[string]string `json:"dependencies"`
	Pebble       pebbleDoc         `json:"pebble"`
}

type pebbleDoc struct {
	DisplayName     string       `json:"displayName"`
	UUID            string       `json:"uuid"`
	SDKVersion      string       `json:"sdkVersion"`
	EnableMultiJS   bool         `json:"enableMultiJS"`
	TargetPlatforms []string     `json:"targetPlatforms"`
	Watchapp        watchappDoc  `json:"watchapp"`
	Resources       resourcesDoc `json:"resources"`
}

type watchappDoc struct {
	Watchface bool `json:"watchface"`
}

type resourcesDoc struct {
	Media []string `json:"media"`
}

// buildManifest marshals the manifest so that arbitrary author and display
// names end up properly escaped.
func buildManifest(name, displayName, author, uuid string) (string, error) {
	doc := manifestDoc{
		Name:         name,
		Author:       author,
		Version:      "1.0.0",
		Keywords:     []string{"pebble-app"},
		Private:      true,
		Dependencies: map[string]string{},
		Pebble: pebbleDoc{
			DisplayName:     displayName,
			UUID:            uuid,
			SDKVersion:      "3",
			EnableMultiJS:   false,
			TargetPlatforms: []string{"aplite", "basalt", "chalk", "diorite"},
			Watchapp:        watchappDoc{Watchface: true},
			Resources:       resourcesDoc{Media: []string{}},
		},
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode manifest: %w", err)
	}
	return string(data) + "\n", nil
}

const wscriptTemplate = `#
# Pebble wscript build configuration
#

top = '.'
out = 'build'

def options(ctx):
    ctx.load('pebble_sdk')

def configure(ctx):
    ctx.load('pebble_sdk')

def build(ctx):
    ctx.load('pebble_sdk')

    build_worker = 'worker_src' in ctx.path.ant_glob('worker_src/**/*.c')

    binaries = []

    for p in ctx.env.TARGET_PLATFORMS:
        ctx.set_env(ctx.all_envs[p])
        ctx.set_group(ctx.env.PLATFORM_NAME)

        app_elf = '{}/pebble-app.elf'.format(ctx.env.BUILD_DIR)
        ctx.pbl_program(source=ctx.path.ant_glob('src/c/**/*.c'), target=app_elf)

        if build_worker:
            worker_elf = '{}/pebble-worker.elf'.format(ctx.env.BUILD_DIR)
            ctx.pbl_worker(source=ctx.path.ant_glob('worker_src/**/*.c'), target=worker_elf)
            binaries.append({'platform': p, 'app_elf': app_elf, 'worker_elf': worker_elf})
        else:
            binaries.append({'platform': p, 'app_elf': app_elf})

    ctx.set_group('bundle')
    ctx.pbl_bundle(
        binaries=binaries,
        js=ctx.path.ant_glob(['src/js/**/*.js', 'src/js/**/*.json', 'src/common/**/*.js', 'src/common/**/*.json'])
    )
`

const gitignoreTemplate = `# Build artifacts
build/

# IDE files
.vscode/
.idea/
*.swp
*.swo
*~

# OS files
.DS_Store
Thumbs.db

# Pebble SDK
.pebble-sdk/
`

// staticCTemplate is a minimal static watchface: a centered time display
// updated once a minute.
const staticCTemplate = `#include <pebble.h>

static Window *s_main_window;
static TextLayer *s_time_layer;

static void update_time(void) {
  time_t temp = time(NULL);
  struct tm *tick_time = localtime(&temp);

  static char s_buffer[8];
  strftime(s_buffer, sizeof(s_buffer), clock_is_24h_style() ? "%H:%M" : "%I:%M", tick_time);
  text_layer_set_text(s_time_layer, s_buffer);
}

static void tick_handler(struct tm *tick_time, TimeUnits units_changed) {
  update_time();
}

static void main_window_load(Window *window) {
  Layer *window_layer = window_get_root_layer(window);
  GRect bounds = layer_get_bounds(window_layer);

  s_time_layer = text_layer_create(GRect(0, 58, bounds.size.w, 50));
  text_layer_set_background_color(s_time_layer, GColorClear);
  text_layer_set_text_color(s_time_layer, GColorWhite);
  text_layer_set_font(s_time_layer, fonts_get_system_font(FONT_KEY_BITHAM_42_BOLD));
  text_layer_set_text_alignment(s_time_layer, GTextAlignmentCenter);
  layer_add_child(window_layer, text_layer_get_layer(s_time_layer));
}

static void main_window_unload(Window *window) {
  text_layer_destroy(s_time_layer);
}

static void init(void) {
  s_main_window = window_create();
  window_set_background_color(s_main_window, GColorBlack);
  window_set_window_handlers(s_main_window, (WindowHandlers) {
    .load = main_window_load,
    .unload = main_window_unload,
  });
  window_stack_push(s_main_window, true);

  tick_timer_service_subscribe(MINUTE_UNIT, tick_handler);
  update_time();
}

static void deinit(void) {
  window_destroy(s_main_window);
}

int main(void) {
  init();
  app_event_loop();
  deinit();
}
`

// animatedCTemplate is a timer-driven watchface: a canvas layer with an
// orbiting second marker drawn as a filled path, redrawn on an AppTimer.
// Animation drops to once a minute while the battery is low. All motion
// uses fixed-point integer math.
const animatedCTemplate = `#include <pebble.h>

#define FRAME_INTERVAL_MS 66
#define LOW_POWER_INTERVAL_MS 60000
#define MARKER_POINTS 4

static Window *s_main_window;
static Layer *s_canvas_layer;
static TextLayer *s_time_layer;
static AppTimer *s_frame_timer;
static GPath *s_marker_path;
static int s_angle;
static bool s_low_power;

static const GPathInfo MARKER_PATH_INFO = {
  .num_points = MARKER_POINTS,
  .points = (GPoint []) {{0, -6}, {6, 0}, {0, 6}, {-6, 0}},
};

static void update_time(void) {
  time_t temp = time(NULL);
  struct tm *tick_time = localtime(&temp);

  static char s_buffer[8];
  strftime(s_buffer, sizeof(s_buffer), clock_is_24h_style() ? "%H:%M" : "%I:%M", tick_time);
  text_layer_set_text(s_time_layer, s_buffer);
}

static void canvas_update_proc(Layer *layer, GContext *ctx) {
  GRect bounds = layer_get_bounds(layer);
  GPoint center = grect_center_point(&bounds);
  int radius = (bounds.size.w < bounds.size.h ? bounds.size.w : bounds.size.h) / 2 - 10;

  graphics_context_set_stroke_color(ctx, GColorWhite);
  graphics_draw_circle(ctx, center, radius);

  int32_t angle = TRIG_MAX_ANGLE * s_angle / 360;
  GPoint marker = {
    .x = center.x + (int16_t)(sin_lookup(angle) * radius / TRIG_MAX_RATIO),
    .y = center.y - (int16_t)(cos_lookup(angle) * radius / TRIG_MAX_RATIO),
  };

  gpath_move_to(s_marker_path, marker);
  graphics_context_set_fill_color(ctx, GColorWhite);
  gpath_draw_filled(ctx, s_marker_path);
}

static void frame_timer_handler(void *context) {
  s_angle = (s_angle + 3) % 360;
  layer_mark_dirty(s_canvas_layer);

  uint32_t interval = s_low_power ? LOW_POWER_INTERVAL_MS : FRAME_INTERVAL_MS;
  s_frame_timer = app_timer_register(interval, frame_timer_handler, NULL);
}

static void battery_handler(BatteryChargeState state) {
  s_low_power = state.charge_percent <= 10 && !state.is_charging;
}

static void tick_handler(struct tm *tick_time, TimeUnits units_changed) {
  update_time();
}

static void main_window_load(Window *window) {
  Layer *window_layer = window_get_root_layer(window);
  GRect bounds = layer_get_bounds(window_layer);

  s_canvas_layer = layer_create(bounds);
  layer_set_update_proc(s_canvas_layer, canvas_update_proc);
  layer_add_child(window_layer, s_canvas_layer);

  s_time_layer = text_layer_create(GRect(0, bounds.size.h / 2 - 21, bounds.size.w, 42));
  text_layer_set_background_color(s_time_layer, GColorClear);
  text_layer_set_text_color(s_time_layer, GColorWhite);
  text_layer_set_font(s_time_layer, fonts_get_system_font(FONT_KEY_BITHAM_30_BLACK));
  text_layer_set_text_alignment(s_time_layer, GTextAlignmentCenter);
  layer_add_child(window_layer, text_layer_get_layer(s_time_layer));
}

static void main_window_unload(Window *window) {
  text_layer_destroy(s_time_layer);
  layer_destroy(s_canvas_layer);
}

static void init(void) {
  s_marker_path = gpath_create(&MARKER_PATH_INFO);

  s_main_window = window_create();
  window_set_background_color(s_main_window, GColorBlack);
  window_set_window_handlers(s_main_window, (WindowHandlers) {
    .load = main_window_load,
    .unload = main_window_unload,
  });
  window_stack_push(s_main_window, true);

  tick_timer_service_subscribe(MINUTE_UNIT, tick_handler);
  battery_state_service_subscribe(battery_handler);
  battery_handler(battery_state_service_peek());
  update_time();

  s_frame_timer = app_timer_register(FRAME_INTERVAL_MS, frame_timer_handler, NULL);
}

static void deinit(void) {
  if (s_frame_timer) {
    app_timer_cancel(s_frame_timer);
  }
  battery_state_service_unsubscribe();
  tick_timer_service_unsubscribe();
  window_destroy(s_main_window);
  gpath_destroy(s_marker_path);
}

int main(void) {
  init();
  app_event_loop();
  deinit();
}
`

const rockyJSTemplate = `// Rocky.js watchface
var rocky = require('rocky');

rocky.on('minutechange', function(event) {
  rocky.requestDraw();
});

rocky.on('draw', function(event) {
  var ctx = event.context;
  ctx.clearRect(0, 0, ctx.canvas.clientWidth, ctx.canvas.clientHeight);

  var d = new Date();
  ctx.fillStyle = 'white';
  ctx.textAlign = 'center';
  ctx.font = '49px Roboto-subset';
  ctx.fillText(d.toLocaleTimeString(undefined, {hour: '2-digit', minute: '2-digit'}),
               ctx.canvas.unobstructedWidth / 2, ctx.canvas.unobstructedHeight / 2 - 30);
});
`
