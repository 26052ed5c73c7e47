package sqlinline

const QUpsertUserAPIKey = `--sql f4c433ba-b323-402d-b9b1-0000c7233650
insert into user_api_keys(
  id,
  user_id,
  encrypted_key,
  iv,
  hint,
  created_at,
  updated_at
) values (
  gen_random_uuid(),
  $1::text,
  $2::text,
  $3::text,
  $4::text,
  now(),
  now()
) on conflict (user_id) do update set
  encrypted_key = excluded.encrypted_key,
  iv = excluded.iv,
  hint = excluded.hint,
  updated_at = now();
`

const QSelectUserAPIKey = `--sql d7551071-51ff-45c6-8bed-2797963c75cb
select encrypted_key, iv
from user_api_keys
where user_id = $1::text
limit 1;
`

const QSelectUserAPIKeyHint = `--sql ad71fdca-bdaf-448d-b16f-d43009391ae6
select hint
from user_api_keys
where user_id = $1::text
limit 1;
`

const QDeleteUserAPIKey = `--sql 5f387585-9535-4a9e-ae4f-a10131d33f8a
delete from user_api_keys
where user_id = $1::text;
`
