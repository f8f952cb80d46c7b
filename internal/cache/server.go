package cache

import "net"

// Serve accepts connections on l and answers protocol requests against kv
// until the listener is closed. Each connection may carry any number of
// requests.
func Serve(l net.Listener, kv KV) {
	for {
		conn, err := l.Accept()
		if err != nil {
			return
		}
		go HandleConn(conn, kv)
	}
}

// HandleConn runs the request loop for one connection.
func HandleConn(conn net.Conn, kv KV) {
	defer conn.Close()
	dec := json.NewDecoder(conn)
	enc := json.NewEncoder(conn)
	for {
		var req Request
		if err := dec.Decode(&req); err != nil {
			return
		}
		_ = enc.Encode(handle(req, kv))
	}
}

func handle(req Request, kv KV) Response {
	switch req.Op {
	case "get":
		v, found, err := kv.Get(req.Key)
		if err != nil {
			return Response{Error: err.Error()}
		}
		return Response{OK: true, Found: found, Value: v}
	case "set":
		if err := kv.Set(req.Key, req.Value); err != nil {
			return Response{Error: err.Error()}
		}
		return Response{OK: true}
	case "remove":
		if err := kv.Remove(req.Key); err != nil {
			return Response{Error: err.Error()}
		}
		return Response{OK: true}
	case "keys":
		keys, err := kv.Keys()
		if err != nil {
			return Response{Error: err.Error()}
		}
		return Response{OK: true, Keys: keys}
	case "remove_many":
		if err := kv.RemoveMany(req.Keys); err != nil {
			return Response{Error: err.Error()}
		}
		return Response{OK: true}
	default:
		return Response{Error: "unknown op"}
	}
}
