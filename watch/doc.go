// Package watch re-renders a template file whenever it changes on disk.
//
// A Watcher pairs a file path with a Renderer (typically a
// template.Engine) and delivers every render on a channel:
//
//	w := watch.New("greeting.txt", engine)
//	for result := range w.Run(ctx) {
//	    if result.Err != nil {
//	        log.Println(result.Err)
//	        continue
//	    }
//	    fmt.Println(result.Output)
//	}
//
// The file renders once immediately, then again after every write. File
// watching uses fsnotify with a polling fallback; the channel closes when
// the context is cancelled.
package watch
